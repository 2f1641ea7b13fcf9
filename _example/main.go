package main

import (
	"cmp"
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hupe1980/gendex"
	"github.com/hupe1980/gendex/codec"
	"github.com/hupe1980/gendex/genindex"
	"github.com/hupe1980/gendex/slotmap"
	"github.com/hupe1980/gendex/snapshot"
	"github.com/hupe1980/gendex/sparseset"
)

type particle struct {
	X, Y   float64
	VX, VY float64
}

type lifetime struct {
	TTL int
}

func main() {
	seed := int64(4711)
	size := 500000
	churn := 200000

	rng := rand.New(rand.NewSource(seed))

	particles := slotmap.New[particle, genindex.U64](slotmap.WithPageSize(1024))
	particles.Reserve(size)

	lifetimes := sparseset.New[lifetime, genindex.U64]()

	fmt.Println("--- Push ---")
	fmt.Println("Size:", size)

	start := time.Now()

	handles := make([]genindex.U64, 0, size)
	for i := 0; i < size; i++ {
		h := particles.Push(particle{
			X:  rng.Float64(),
			Y:  rng.Float64(),
			VX: rng.NormFloat64(),
			VY: rng.NormFloat64(),
		})
		lifetimes.Insert(h, lifetime{TTL: rng.Intn(1000)})
		handles = append(handles, h)
	}

	fmt.Printf("Seconds: %.2f\n\n", time.Since(start).Seconds())

	fmt.Println("--- Churn ---")
	fmt.Println("Remove + reuse:", churn)

	start = time.Now()

	for i := 0; i < churn; i++ {
		h := handles[rng.Intn(len(handles))]
		if _, ok := particles.Remove(h); !ok {
			continue // already recycled in an earlier round
		}
		lifetimes.Remove(h)

		nh := particles.Push(particle{X: rng.Float64(), Y: rng.Float64()})
		lifetimes.Insert(nh, lifetime{TTL: rng.Intn(1000)})
		handles = append(handles, nh)
	}

	fmt.Printf("Seconds: %.2f\n", time.Since(start).Seconds())
	fmt.Println("Live:", particles.Len(), "Slots:", particles.Cap())
	fmt.Println()

	fmt.Println("--- Join + expire ---")

	start = time.Now()

	for _, row := range gendex.JoinRefs(lifetimes.Refs(), particles) {
		row.Left.TTL--
		row.Right.X += row.Right.VX
		row.Right.Y += row.Right.VY
	}

	expired := 0
	particles.Retain(func(h genindex.U64, _ *particle) bool {
		lt, ok := lifetimes.Get(h)
		if ok && lt.TTL > 0 {
			return true
		}
		lifetimes.Remove(h)
		expired++
		return false
	})

	fmt.Printf("Seconds: %.2f\n", time.Since(start).Seconds())
	fmt.Println("Expired:", expired, "Live:", particles.Len())
	fmt.Println()

	fmt.Println("--- Sort ---")

	start = time.Now()

	lifetimes.SortFunc(func(a, b sparseset.Entry[genindex.U64, lifetime]) int {
		return cmp.Compare(a.Value.TTL, b.Value.TTL)
	})

	fmt.Printf("Seconds: %.4f\n\n", time.Since(start).Seconds())

	fmt.Println("--- Snapshot ---")

	path := "world.gdx"
	defer os.Remove(path)

	bundle := snapshot.NewBundle().
		Add("particles", snapshot.Bind(codec.Gob{}, particles)).
		Add("lifetimes", snapshot.Bind(codec.Gob{}, lifetimes))

	start = time.Now()

	if err := snapshot.SaveFile(context.Background(), path, bundle,
		snapshot.WithCompression(snapshot.CompressionZstd),
	); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Save seconds: %.2f\n", time.Since(start).Seconds())

	info, err := snapshot.InspectFile(path)
	if err != nil {
		log.Fatal(err)
	}
	for _, s := range info.Sections {
		fmt.Printf("Section %s: %d bytes (%d stored)\n", s.Name, s.Bytes, s.StoredBytes)
	}

	restoredParticles := slotmap.New[particle, genindex.U64](slotmap.WithPageSize(1024))
	restoredLifetimes := sparseset.New[lifetime, genindex.U64]()

	restore := snapshot.NewBundle().
		Add("particles", snapshot.Bind(codec.Gob{}, restoredParticles)).
		Add("lifetimes", snapshot.Bind(codec.Gob{}, restoredLifetimes))

	start = time.Now()

	if err := snapshot.LoadFile(context.Background(), path, restore); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Load seconds: %.2f\n", time.Since(start).Seconds())
	fmt.Println("Restored:", restoredParticles.Len(), "particles,", restoredLifetimes.Len(), "lifetimes")
}
