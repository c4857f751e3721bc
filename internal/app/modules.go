package app

import (
	"github.com/cory321/node-playground-sub003/internal/kind"
	"github.com/cory321/node-playground-sub003/kinds/article"
	"github.com/cory321/node-playground-sub003/kinds/keywords"
	"github.com/cory321/node-playground-sub003/kinds/note"
	"github.com/cory321/node-playground-sub003/kinds/topics"
)

// BuiltinKinds returns the kind modules shipped with the engine.
func BuiltinKinds() []kind.Module {
	return []kind.Module{
		&keywords.Module{},
		&topics.Module{},
		&article.Module{},
		&note.Module{},
	}
}
