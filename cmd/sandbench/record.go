package main

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"falling-sand/internal/render"
	"falling-sand/internal/sims/sand"

	"github.com/icza/mjpeg"
)

// recorder writes every observed world state as one MJPEG frame.
type recorder struct {
	aw    mjpeg.AviWriter
	scale int
	buf   bytes.Buffer
	opts  *jpeg.Options
}

func newRecorder(path string, preset sand.Preset, scale, fps int) (*recorder, error) {
	if scale < 1 {
		scale = 1
	}
	aw, err := mjpeg.New(path, int32(preset.Width*scale), int32(preset.Height*scale), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &recorder{aw: aw, scale: scale, opts: &jpeg.Options{Quality: 90}}, nil
}

func (r *recorder) frame(w *sand.World) error {
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, render.GridImage(w, r.scale), r.opts); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return r.aw.AddFrame(r.buf.Bytes())
}

func (r *recorder) Close() error {
	return r.aw.Close()
}
