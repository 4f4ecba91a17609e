package main

import (
	"context"
	"fmt"
	"os"

	"github.com/NVIDIA/treemap"
	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
)

func main() {
	cmd := CreateCommand(run)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.WithError(err).Fatal("treemap failed")
	}
}

func run(ctx context.Context, args *Args) error {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if args.Debug {
		log.SetLevel(log.DebugLevel)
	}

	config := NewConfig()
	if args.ConfigPath != "" {
		if err := config.Load(args.ConfigPath); err != nil {
			return errors.Wrapf(err, "failed to load config %s", args.ConfigPath)
		}
		log.WithField("path", args.ConfigPath).Debugf("loaded %d entries", len(config.Entries))
	}

	tree, err := buildTree(config.Entries)
	if err != nil {
		return errors.Wrap(err, "failed to build tree")
	}

	if len(config.Entries) > 0 {
		firstKey := config.Entries[0].Key
		value, ok, err := tree.Get(firstKey)
		if err != nil {
			return errors.Wrapf(err, "lookup of %s failed", firstKey)
		}
		if ok {
			fmt.Println(value)
		} else {
			log.WithField("key", firstKey).Warn("key not found")
		}
	}

	tree.Range(func(key string, value int) bool {
		fmt.Println(key + ", " + fmt.Sprint(value))
		return true
	})

	if err := renderSummary(tree); err != nil {
		log.WithError(err).Error("failed to render summary")
	}

	if args.Tree {
		if err := renderTree(tree); err != nil {
			return errors.Wrap(err, "failed to render tree")
		}
	}

	return nil
}

func buildTree(entries []EntryConfig) (treemap.TreeMap[string, int], error) {
	tree := treemap.NewTreeMap[string, int](treemap.CompareString, nil)

	for _, entry := range entries {
		previous, replaced, err := tree.Put(entry.Key, entry.Value)
		if err != nil {
			return nil, err
		}

		logger := log.WithFields(log.Fields{"key": entry.Key, "value": entry.Value})
		if replaced {
			logger.WithField("previous", previous).Info("replaced")
		} else {
			logger.Debug("inserted")
		}
	}

	if err := tree.Validate(); err != nil {
		return nil, err
	}

	return tree, nil
}
