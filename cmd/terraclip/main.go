// Package main generates the clipmap mesh catalog, reports per-mesh
// statistics, and optionally dumps each mesh as a Wavefront OBJ file.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/fastland/terraclip/internal/config"
	"github.com/fastland/terraclip/internal/export"
	"github.com/fastland/terraclip/internal/geoclipmap"
	"github.com/fastland/terraclip/internal/logger"
)

var flagDumpOBJ = flag.String("dump-obj", "", "Directory to write one .obj file per catalog mesh")

// memoryBackend keeps registered meshes in memory so they can be inspected
// and exported after generation.
type memoryBackend struct {
	meshes map[geoclipmap.Handle]*geoclipmap.Mesh
	next   geoclipmap.Handle
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{meshes: make(map[geoclipmap.Handle]*geoclipmap.Mesh)}
}

func (b *memoryBackend) CreateMesh(m *geoclipmap.Mesh) (geoclipmap.Handle, error) {
	b.next++
	b.meshes[b.next] = m
	return b.next, nil
}

func (b *memoryBackend) ReleaseMesh(h geoclipmap.Handle) {
	delete(b.meshes, h)
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Log.Info("generating clipmap catalog",
		zap.Int("tile_resolution", cfg.Terrain.TileResolution),
		zap.Int("levels", cfg.Terrain.Levels),
	)

	backend := newMemoryBackend()
	handles, err := geoclipmap.Generate(backend, cfg.Terrain.TileResolution, cfg.Terrain.Levels)
	if err != nil {
		logger.Log.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}

	var totalVertices, totalIndices int
	for slot := geoclipmap.SlotTile; slot < geoclipmap.SlotCount; slot++ {
		m := backend.meshes[handles[slot]]
		totalVertices += len(m.Vertices)
		totalIndices += len(m.Indices)

		logger.Log.Info("mesh",
			zap.Stringer("slot", slot),
			zap.Int("vertices", len(m.Vertices)),
			zap.Int("triangles", len(m.Indices)/3),
			zap.Any("bounds_min", m.Bounds.Min),
			zap.Any("bounds_max", m.Bounds.Max),
		)
	}
	logger.Log.Info("catalog complete",
		zap.Int("meshes", len(handles)),
		zap.Int("total_vertices", totalVertices),
		zap.Int("total_triangles", totalIndices/3),
	)

	if *flagDumpOBJ != "" {
		if err := dumpCatalog(*flagDumpOBJ, backend, handles); err != nil {
			logger.Log.Error("obj dump failed", zap.Error(err))
			os.Exit(1)
		}
	}
}

func dumpCatalog(dir string, backend *memoryBackend, handles []geoclipmap.Handle) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for slot := geoclipmap.SlotTile; slot < geoclipmap.SlotCount; slot++ {
		name := slot.String()
		path := filepath.Join(dir, name+".obj")
		if err := export.WriteOBJFile(path, name, backend.meshes[handles[slot]]); err != nil {
			return err
		}
		logger.Log.Info("wrote obj", zap.String("path", path))
	}
	return nil
}
