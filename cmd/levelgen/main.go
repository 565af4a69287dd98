// Command levelgen builds a level from a room list and prints a preview.
//
//	levelgen --rooms rooms.yaml [--config level.yaml] [--seed N]
//	         [--png out.png] [--scale N] [--imgcat] [--color] [--verbose]
//
// Room files ending in .svg are read as drawings whose <rect> elements are
// rooms; anything else is YAML.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/katalvlaran/lvlgen/level"
	"github.com/katalvlaran/lvlgen/preview"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"gopkg.in/alecthomas/kingpin.v2"
)

// catImage writes an image file to a terminal using the iTerm2 protocol.
var catImage = imgcat.CatFile

type flags struct {
	rooms   string
	config  string
	seed    int64
	png     string
	scale   int
	imgcat  bool
	color   bool
	verbose bool
}

func newApp(f *flags) *kingpin.Application {
	app := kingpin.New("levelgen", "Connect placed rooms with corridors and preview the level.")
	app.Flag("rooms", "Room list (.yaml or .svg).").Short('r').Required().ExistingFileVar(&f.rooms)
	app.Flag("config", "Level config (.yaml).").Short('c').ExistingFileVar(&f.config)
	app.Flag("seed", "Override the config seed (0 keeps it).").Default("0").Int64Var(&f.seed)
	app.Flag("png", "Write a PNG preview to this path.").StringVar(&f.png)
	app.Flag("scale", "Pixels per cell in the PNG.").Default("8").IntVar(&f.scale)
	app.Flag("imgcat", "Show the PNG inline (iTerm2 image protocol).").BoolVar(&f.imgcat)
	app.Flag("color", "Color the ASCII preview.").BoolVar(&f.color)
	app.Flag("verbose", "Log every pipeline stage.").Short('v').BoolVar(&f.verbose)

	return app
}

func main() {
	var f flags
	app := newApp(&f)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(f, os.Stdout, os.Stderr); err != nil {
		app.Fatalf("%v", err)
	}
}

func run(f flags, stdout, stderr io.Writer) error {
	lvl := slog.LevelInfo
	if f.verbose {
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	cfg := level.DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = level.LoadConfigFile(f.config); err != nil {
			return err
		}
	}
	if f.seed != 0 {
		cfg.Seed = f.seed
	}

	rooms, err := loadRooms(f.rooms, cfg.CellSize)
	if err != nil {
		return err
	}
	logger.Debug("loaded rooms", slog.String("path", f.rooms), slog.Int("count", len(rooms)))

	g, err := level.NewGenerator(cfg, level.WithLogger(logger))
	if err != nil {
		return err
	}
	lv, err := g.Generate(rooms)
	if err != nil {
		return err
	}

	fmt.Fprint(stdout, preview.ASCII(lv, preview.WithColor(f.color)))
	summarize(stdout, lv, levelName(cfg.Seed))

	pngPath := f.png
	if pngPath == "" && f.imgcat {
		dir, err := os.MkdirTemp("", "levelgen")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)
		pngPath = filepath.Join(dir, "level.png")
	}
	if pngPath == "" {
		return nil
	}
	if err := preview.PNG(lv, pngPath, f.scale); err != nil {
		return err
	}
	logger.Debug("wrote preview", slog.String("path", pngPath))
	if f.imgcat {
		if err := catImage(pngPath, stdout); err != nil {
			return fmt.Errorf("levelgen: imgcat: %w", err)
		}
	}

	return nil
}

func loadRooms(path string, cellSize float64) ([]level.Room, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return level.LoadRoomsSVGFile(path, cellSize)
	}

	return level.LoadRoomsFile(path)
}

// levelName derives a readable name from seed. petname draws from the
// global math/rand source, so it is reseeded first.
func levelName(seed int64) string {
	rand.Seed(seed) //nolint:staticcheck
	return petname.Generate(2, "-")
}

func summarize(w io.Writer, lv *level.Level, name string) {
	loops := 0
	for _, c := range lv.Corridors {
		if c.Loop {
			loops++
		}
	}
	fmt.Fprintf(w, "level %s\n", name)
	fmt.Fprintf(w, "  rooms      %d\n", len(lv.Rooms))
	fmt.Fprintf(w, "  triangles  %d\n", len(lv.Triangulation.Triangles))
	fmt.Fprintf(w, "  tree edges %d\n", len(lv.Tree))
	fmt.Fprintf(w, "  loops      %d\n", loops)
	fmt.Fprintf(w, "  skipped    %d\n", len(lv.Skipped))
	fmt.Fprintf(w, "  path cells %d\n", lv.Count(level.Path))
}
