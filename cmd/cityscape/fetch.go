package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cityscape/internal/assets"
	"cityscape/internal/fonts"
)

// fetchPack downloads url into root. A zip pack is unpacked in place and removed.
func fetchPack(ctx context.Context, url, root string) error {
	saved, err := assets.Fetch(ctx, url, root)
	if err != nil {
		return err
	}
	if assets.KindOf(saved) != assets.KindPack {
		fmt.Println("saved", saved)
		return nil
	}
	files, err := assets.Unpack(saved, root)
	if err != nil {
		return err
	}
	if err := os.Remove(saved); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	fmt.Printf("unpacked %d files into %s\n", len(files), root)
	return nil
}

// fetchFont looks family up in the Google Fonts repository and saves its
// regular file under root/fonts, where a CSS font-family finds it.
func fetchFont(ctx context.Context, family, root string) error {
	url, err := fonts.DefaultGoogle().Resolve(ctx, family)
	if err != nil {
		return err
	}
	saved, err := assets.Fetch(ctx, url, filepath.Join(root, fonts.Dir))
	if err != nil {
		return err
	}
	fmt.Println("saved", saved)
	return nil
}
