package main

import (
	"os"

	"github.com/sulicat/checkers/render"
)

func writeSVG(desc, path string) error {
	b, err := newBoard(desc)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	render.SVG(f, b)
	return nil
}
