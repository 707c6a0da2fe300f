package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/icza/mjpeg"

	"github.com/linuxmatters/festmap/internal/config"
)

// Time-lapse file names
const (
	DensityAnimationFile = "density.avi"
	RiskAnimationFile    = "risk.avi"
)

// animation collects one frame per block into two MJPEG AVI files
type animation struct {
	density mjpeg.AviWriter
	risk    mjpeg.AviWriter
	paths   []string
	buf     bytes.Buffer
}

func newAnimation(dir string, canvas image.Rectangle) (*animation, error) {
	w, h := int32(canvas.Dx()), int32(canvas.Dy())

	densityPath := filepath.Join(dir, DensityAnimationFile)
	density, err := mjpeg.New(densityPath, w, h, config.AnimationFPS)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", DensityAnimationFile, err)
	}

	riskPath := filepath.Join(dir, RiskAnimationFile)
	risk, err := mjpeg.New(riskPath, w, h, config.AnimationFPS)
	if err != nil {
		density.Close()
		os.Remove(densityPath)
		return nil, fmt.Errorf("creating %s: %w", RiskAnimationFile, err)
	}

	return &animation{
		density: density,
		risk:    risk,
		paths:   []string{densityPath, riskPath},
	}, nil
}

func (a *animation) addDensity(img image.Image) error {
	if a == nil {
		return nil
	}
	return a.add(a.density, DensityAnimationFile, img)
}

func (a *animation) addRisk(img image.Image) error {
	if a == nil {
		return nil
	}
	return a.add(a.risk, RiskAnimationFile, img)
}

func (a *animation) add(w mjpeg.AviWriter, name string, img image.Image) error {
	a.buf.Reset()
	if err := jpeg.Encode(&a.buf, img, &jpeg.Options{Quality: config.AnimationJPEGQuality}); err != nil {
		return fmt.Errorf("encoding %s frame: %w", name, err)
	}
	if err := w.AddFrame(a.buf.Bytes()); err != nil {
		return fmt.Errorf("adding %s frame: %w", name, err)
	}
	return nil
}

// close finalises both files and returns their paths
func (a *animation) close() ([]string, error) {
	density, risk := a.density, a.risk
	a.density, a.risk = nil, nil

	if err := density.Close(); err != nil {
		risk.Close()
		return nil, fmt.Errorf("finalising %s: %w", DensityAnimationFile, err)
	}
	if err := risk.Close(); err != nil {
		return nil, fmt.Errorf("finalising %s: %w", RiskAnimationFile, err)
	}
	return a.paths, nil
}

// abort closes any writer still open after a failed run
func (a *animation) abort() {
	if a.density != nil {
		a.density.Close()
	}
	if a.risk != nil {
		a.risk.Close()
	}
}
