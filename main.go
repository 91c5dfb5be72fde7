package main

import (
	"os"

	"emotionview/internal/config"
	"emotionview/internal/controller"
	"emotionview/internal/ui"
	"emotionview/processing/capture"
	"emotionview/processing/detector"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.NewLogger("development").Error("config", "error", err)
		os.Exit(1)
	}

	log := config.NewLogger(cfg.Environment)

	faces, err := detector.NewFaceDetector(cfg.CascadePath)
	if err != nil {
		log.Error("face detector", "error", err)
		os.Exit(1)
	}
	defer faces.Close()

	emotions, err := detector.NewEmotionNet(cfg.EmotionModelPath)
	if err != nil {
		log.Error("emotion model", "error", err)
		os.Exit(1)
	}
	defer emotions.Close()

	pipe := detector.NewPipeline(faces, emotions)

	open := func() (controller.Feed, error) {
		cam, err := capture.OpenWebcam(cfg.CameraDevice)
		if err != nil {
			return nil, err
		}
		return detector.NewFeed(cam, pipe), nil
	}

	app := ui.CreateApp(cfg, open, log)
	app.Run()
}
