package sparseset

import (
	"github.com/hupe1980/gendex"
	"github.com/hupe1980/gendex/genindex"
)

// The set satisfies the shared container contracts.
var (
	_ gendex.Collection                   = (*Set[int, genindex.U64])(nil)
	_ gendex.Getter[genindex.U64, int]    = (*Set[int, genindex.U64])(nil)
	_ gendex.RefGetter[genindex.U64, int] = (*Set[int, genindex.U64])(nil)
	_ gendex.Inserter[genindex.U64, int]  = (*Set[int, genindex.U64])(nil)
	_ gendex.Remover[genindex.U64, int]   = (*Set[int, genindex.U64])(nil)
	_ gendex.Retainer[genindex.U64, int]  = (*Set[int, genindex.U64])(nil)
	_ gendex.Reserver                     = (*Set[int, genindex.U64])(nil)
	_ gendex.LiveSetter                   = (*Set[int, genindex.U64])(nil)
)
