package app

import (
	"fmt"

	"github.com/abhisek/quizdeck/internal/config"
	"github.com/abhisek/quizdeck/internal/questions"
	"github.com/abhisek/quizdeck/internal/store"
)

// ResolveSource maps a topic to the source its questions load from: the
// SQLite bank for bank:// topics, a single GET for http(s) URLs, and a local
// file otherwise.
func ResolveSource(cfg *config.Config, t config.Topic) (questions.Source, error) {
	switch {
	case t.IsBank():
		path := cfg.BankPath
		if path == "" {
			p, err := store.DefaultDBPath()
			if err != nil {
				return nil, fmt.Errorf("resolve bank path: %w", err)
			}
			path = p
		}
		return store.BankSource{Path: path, Topic: t.BankTopic()}, nil
	case t.IsRemote():
		return questions.HTTPSource{URL: t.Source}, nil
	default:
		return questions.FileSource{Path: cfg.SourcePath(t)}, nil
	}
}
