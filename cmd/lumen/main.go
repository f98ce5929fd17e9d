package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"chosenoffset.com/lumen/internal/config"
	"chosenoffset.com/lumen/internal/game"
	"chosenoffset.com/lumen/internal/logging"
	"chosenoffset.com/lumen/internal/render"
	ebitenrender "chosenoffset.com/lumen/internal/render/ebiten"
	"chosenoffset.com/lumen/internal/render/lighting"
)

func main() {
	configPath := flag.String("config", "lumen.yaml", "Path to a JSON or YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New("lumen", cfg.Debug)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics := lighting.NewMetrics(reg)
	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			logger.Infof("serving metrics on %s", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Errorf("metrics server stopped: %v", err)
			}
		}()
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	var shader render.Shader
	if src, err := os.ReadFile(cfg.ShaderPath); err != nil {
		logger.Warnf("failed to load lighting shader: %v", err)
	} else if shader, err = renderer.CompileShader(src); err != nil {
		logger.Warnf("failed to compile lighting shader: %v", err)
		shader = nil
	}

	var texture render.Image
	if cfg.Lighting.LightTexture != "" {
		if texture, err = loader.LoadImage(cfg.Lighting.LightTexture); err != nil {
			logger.Warnf("failed to load light texture: %v", err)
			texture = nil
		}
	}

	manager := lighting.NewManager(cfg.Lighting, logger, metrics)
	g, err := game.New(cfg, renderer, inputMgr, logger, manager, shader, texture)
	if err != nil {
		log.Fatalf("Failed to start demo: %v", err)
	}

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	logger.Infof("starting")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
	if texture != nil {
		texture.Dispose()
	}
}
