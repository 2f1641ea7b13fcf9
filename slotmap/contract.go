package slotmap

import (
	"github.com/hupe1980/gendex"
	"github.com/hupe1980/gendex/genindex"
)

// The map satisfies the shared container contracts.
var (
	_ gendex.Collection                   = (*Map[int, genindex.U64])(nil)
	_ gendex.Getter[genindex.U64, int]    = (*Map[int, genindex.U64])(nil)
	_ gendex.RefGetter[genindex.U64, int] = (*Map[int, genindex.U64])(nil)
	_ gendex.Pusher[int, genindex.U64]    = (*Map[int, genindex.U64])(nil)
	_ gendex.Remover[genindex.U64, int]   = (*Map[int, genindex.U64])(nil)
	_ gendex.Retainer[genindex.U64, int]  = (*Map[int, genindex.U64])(nil)
	_ gendex.Reserver                     = (*Map[int, genindex.U64])(nil)
	_ gendex.LiveSetter                   = (*Map[int, genindex.U64])(nil)
)
