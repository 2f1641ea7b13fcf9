package genmap

import (
	"github.com/hupe1980/gendex"
	"github.com/hupe1980/gendex/genindex"
)

// The map satisfies the shared container contracts. Reserve is absent on
// purpose: not every backing has a meaningful capacity.
var (
	_ gendex.Collection                   = (*Map[int, genindex.U64])(nil)
	_ gendex.Getter[genindex.U64, int]    = (*Map[int, genindex.U64])(nil)
	_ gendex.RefGetter[genindex.U64, int] = (*Map[int, genindex.U64])(nil)
	_ gendex.Inserter[genindex.U64, int]  = (*Map[int, genindex.U64])(nil)
	_ gendex.Remover[genindex.U64, int]   = (*Map[int, genindex.U64])(nil)
	_ gendex.Retainer[genindex.U64, int]  = (*Map[int, genindex.U64])(nil)
	_ gendex.LiveSetter                   = (*Map[int, genindex.U64])(nil)
)
