package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/user"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/denovoplot/render"
	"github.com/carbocation/denovoplot/server"
	"github.com/carbocation/denovoplot/summary"
	"github.com/carbocation/denovoplot/table"
	"github.com/carbocation/denovoplot/viewer"
	"github.com/carbocation/pfx"
	"google.golang.org/api/option"
)

type config struct {
	Input     string
	Out       string
	Port      int
	Summarize bool
}

func run(ctx context.Context, cfg config) error {
	var client *storage.Client
	if strings.HasPrefix(cfg.Input, "gs://") {
		var err error
		client, err = storage.NewClient(ctx, option.WithScopes(storage.ScopeReadOnly))
		if err != nil {
			return pfx.Err(err)
		}
		defer client.Close()
	}

	tbl, err := table.Load(ctx, cfg.Input, client)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d rows from %s\n", tbl.N(), cfg.Input)

	for i, name := range tbl.Columns {
		log.Printf("Mean %s: %g\n", name, tbl.Mean(i))
	}

	long := tbl.Melt()

	if cfg.Summarize {
		strategies, err := summary.Describe(long)
		if err != nil {
			return err
		}
		if err := summary.Fprint(os.Stderr, strategies, summaryBins); err != nil {
			return err
		}
	}

	fig, err := render.New(tbl.Columns, long, render.DefaultStyle)
	if err != nil {
		return err
	}

	if n := fig.Hidden(); n > 0 {
		log.Printf("%d value(s) fall outside [%g, %g] and are not drawn\n", n, fig.Style.YMin, fig.Style.YMax)
	}
	if n := fig.Squeezed(); n > 0 {
		log.Printf("%d point(s) do not fit in their category and overlap at its edge\n", n)
	}

	title := path.Base(cfg.Input)

	switch {
	case cfg.Out != "":
		return writePNG(fig, cfg.Out)

	case cfg.Port > 0:
		png, err := fig.PNG()
		if err != nil {
			return err
		}
		printTunnelHint(cfg.Port)
		return server.New(title, png).Serve(ctx, fmt.Sprintf(":%d", cfg.Port))

	case !viewer.HasDisplay():
		out := defaultOutput(cfg.Input)
		log.Println("No display is available, so the chart will be written to", out)
		return writePNG(fig, out)
	}

	img, err := fig.Image()
	if err != nil {
		return err
	}
	log.Println("Showing the chart. Close the window to exit.")
	viewer.Show(title, img)

	return nil
}

func writePNG(fig *render.Figure, out string) error {
	f, err := os.Create(out)
	if err != nil {
		return pfx.Err(err)
	}

	if err := fig.WritePNG(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return pfx.Err(err)
	}

	log.Println("Wrote", out)
	return nil
}

// defaultOutput names the PNG written when no window can be opened: the
// input's base name, without compression or table extensions, in the working
// directory.
func defaultOutput(input string) string {
	base := path.Base(strings.TrimRight(input, "/"))
	for _, ext := range []string{".gz", ".bz2", ".xz", ".zip", ".Z", ".zlib"} {
		if strings.HasSuffix(base, ext) {
			base = strings.TrimSuffix(base, ext)
			break
		}
	}
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "" || base == "." || base == "/" {
		base = "denovoplot"
	}
	return base + ".png"
}

func printTunnelHint(port int) {
	whoami, err := user.Current()
	if err != nil {
		return
	}
	hostname, err := os.Hostname()
	if err != nil {
		return
	}

	log.Println("If this is a remote machine, locally you should now run:")
	log.Printf("ssh %s@%s -NnT -L %d:localhost:%d\n", whoami.Username, hostname, port, port)
	log.Printf("and then open http://localhost:%d\n", port)
}
