package cmd

import (
	"context"
	"net/http"

	"droscher.com/MyWhiskies/configs"
	"droscher.com/MyWhiskies/pkg/images"
	"droscher.com/MyWhiskies/pkg/server"
	"droscher.com/MyWhiskies/pkg/storage/local"
	"droscher.com/MyWhiskies/pkg/storage/memory"
	"droscher.com/MyWhiskies/pkg/storage/s3"
)

// openStore builds the configured object store. The handler serves the
// stored pictures when the store has no public URL of its own.
func openStore(ctx context.Context, conf configs.Images) (images.ObjectStore, http.Handler, error) {
	processor := images.NewProcessor(conf)

	switch conf.Driver {
	case "local":
		store, err := local.New(conf.Directory)
		if err != nil {
			return nil, nil, err
		}

		return store, server.ObjectHandler(store, processor.ContentType()), nil
	case "memory":
		store := memory.New()

		return store, server.ObjectHandler(store, processor.ContentType()), nil
	default:
		store, err := s3.New(ctx, conf)
		if err != nil {
			return nil, nil, err
		}

		return store, nil, nil
	}
}
