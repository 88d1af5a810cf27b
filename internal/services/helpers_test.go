package services

import (
	"io"
	"log/slog"

	"gpuadvisor/internal/models"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testGPU(name string, vramMB int) *models.GPUInfo {
	return &models.GPUInfo{Name: name, VRAMTotalMB: vramMB}
}

func testPredictor() *Predictor {
	return NewPredictorFromCatalog(NewCatalog(""), quietLogger())
}
