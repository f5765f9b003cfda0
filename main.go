// main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"approach/v2/audio"
	"approach/v2/debris"
	"approach/v2/flight"
	"approach/v2/scene"

	"github.com/quasilyte/gdata/v2"
)

func main() {
	configPath := flag.String("config", "", "Scene YAML file (default: built-in scene)")
	pathFile := flag.String("path", "", "Fly a path saved with -export instead of the scene route")
	cameraName := flag.String("camera", "", "Camera: chase, cockpit or side (default: last used)")
	musicPath := flag.String("music", "", "MP3 soundtrack to loop")
	seed := flag.Int64("seed", 0, "Asteroid seed (0: scene seed, else random)")
	asteroids := flag.Int("asteroids", -1, "Override asteroid count")
	speed := flag.Float64("speed", 0, "Initial speed factor 0.5-2.0, rounded to 0.1 (default: last used)")
	export := flag.String("export", "", "Write the built path as JSON to this file and exit")
	summary := flag.Bool("summary", false, "Print the segment table and exit")
	debug := flag.Bool("debug", false, "Write logs to logs/approach.log")
	noSave := flag.Bool("nosave", false, "Do not load or store viewer settings")
	flag.Parse()

	if logFile := setupLogging(*debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := scene.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *asteroids >= 0 {
		cfg.Asteroids.Count = *asteroids
	}

	var path *flight.Path
	if *pathFile != "" {
		path, err = loadPath(*pathFile)
	} else {
		path, err = flight.BuildRoute(cfg.Route())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: building path: %v\n", err)
		os.Exit(1)
	}
	anim := flight.NewAnimator(path, cfg.Options())
	log.Printf("[Scene] %d curves, %d points, %d segments", len(cfg.Approach.Curves), path.Len(), len(path.Segments))

	store := openSettings(*noSave)
	settings := store.Settings()
	if *speed != 0 {
		settings.SpeedFactor = flight.ClampSpeed(*speed)
	}

	if *export != "" || *summary {
		if *export != "" {
			if err := exportPath(*export, path); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Wrote %d points to %s\n", path.Len(), *export)
		}
		if *summary {
			flight.PrintReport(os.Stdout, settings.SpeedFactor, flight.Report(anim, settings.SpeedFactor))
		}
		return
	}

	camera, err := startCamera(*cameraName, settings.Camera)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = cfg.Asteroids.Seed
	}
	if *seed == 0 {
		*seed = debris.RandomSeed()
	}
	field, err := debris.Scatter(cfg.Curves(), cfg.Field(), newRockModel(), debris.NewRand(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: asteroid field: %v\n", err)
		os.Exit(1)
	}
	log.Printf("[Scene] %d asteroids (seed %d)", field.Len(), *seed)

	r := NewSceneRenderer(anim, cfg.Options().Forward, settings.SpeedFactor, field, *seed)
	r.camera = camera
	for _, l := range cfg.Landmarks {
		model := newRingModel([]rune(l.Glyph)[0], 24)
		r.addLandmark(l.Name, model, l.Instance(model))
	}

	if *musicPath != "" {
		music, err := audio.Open(*musicPath, settings.MusicVolume)
		if err != nil {
			log.Printf("[Audio] %v (continuing without sound)", err)
		} else {
			defer music.Close()
			music.SetPlaying(settings.MusicEnabled)
			r.music = music
		}
	}

	screen, err := openScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Graphics error: %v\n", err)
		os.Exit(1)
	}
	err = runScene(screen, r)
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Graphics error: %v\n", err)
		os.Exit(1)
	}

	store.SetSpeedFactor(r.actor.Speed)
	store.SetCamera(r.camera.String())
	if r.music != nil {
		store.SetMusicEnabled(r.music.Playing())
	}
	if err := store.Save(); err != nil {
		log.Printf("[Settings] %v", err)
	}
}

// openSettings returns a gdata-backed store, or a memory-only one when
// saving is disabled or the data directory is unavailable.
func openSettings(noSave bool) *scene.SettingsStore {
	if noSave {
		return scene.NewSettingsStore(nil)
	}
	m, err := gdata.Open(gdata.Config{AppName: "approach"})
	if err != nil {
		log.Printf("[Settings] Storage unavailable: %v", err)
		return scene.NewSettingsStore(nil)
	}
	return scene.NewSettingsStore(m)
}

// exportPath writes the path as indented JSON.
func exportPath(file string, p *flight.Path) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	if err := p.WriteJSON(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	return f.Close()
}

// loadPath reads a path previously written with -export.
func loadPath(file string) (*flight.Path, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	p, err := flight.ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return p, nil
}
