package site

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/kspace-org/kspace/internal/config"
	"github.com/kspace-org/kspace/internal/curriculum"
	"github.com/kspace-org/kspace/internal/progress"
	"github.com/kspace-org/kspace/internal/walker"
)

// DataPath is where the data file is published inside the site.
const DataPath = "data/learning-path.json"

// Generator renders the learning path into a static site.
type Generator struct {
	cfg      *config.Config
	Reporter progress.Reporter
	// LiveReload adds the reload client to generated pages.
	LiveReload bool
}

// Result summarizes one Generate run.
type Result struct {
	Sections int
	Items    int
	Pending  int
	Topics   int
	// Unlisted holds topic pages that no item of the learning path links to.
	Unlisted []string
}

// NewGenerator creates a Generator for cfg that reports no progress.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg, Reporter: progress.Nop{}}
}

// Renderer returns the page renderer configured for this site.
func (g *Generator) Renderer() *Renderer {
	return &Renderer{
		SiteTitle:  g.cfg.SiteTitle,
		IndexPage:  g.cfg.IndexPage,
		DataFile:   g.cfg.DataFile,
		LiveReload: g.LiveReload,
	}
}

// Generate writes the index page, the assets, the published data file and
// every topic page. When the data file cannot be loaded the index carries
// the diagnostic panel, topic pages are rendered without prev/next, and
// the load error is returned after everything else has been written.
func (g *Generator) Generate(ctx context.Context) (Result, error) {
	var res Result
	out := g.cfg.OutputDir
	renderer := g.Renderer()

	if err := os.MkdirAll(filepath.Join(out, "assets"), 0o755); err != nil {
		return res, fmt.Errorf("creating output dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(out, "assets", "style.css"), []byte(cssContent), 0o644); err != nil {
		return res, err
	}
	if err := os.WriteFile(filepath.Join(out, "assets", "script.js"), []byte(jsContent), 0o644); err != nil {
		return res, err
	}

	doc, dataErr := curriculum.Open(ctx, g.cfg.DataFile)
	if dataErr != nil {
		log.Printf("site: loading %s: %v", g.cfg.DataFile, dataErr)
	} else {
		res.Sections = len(doc.Sections)
		res.Items = doc.ItemCount()
		res.Pending = doc.PendingCount()
		if err := curriculum.Save(filepath.Join(out, filepath.FromSlash(DataPath)), doc); err != nil {
			return res, fmt.Errorf("publishing data file: %w", err)
		}
	}

	if err := g.writeIndex(renderer, doc, dataErr); err != nil {
		return res, fmt.Errorf("writing index: %w", err)
	}

	files, err := walker.Walk(walker.WalkerConfig{
		RootDir: g.cfg.ContentDir,
		Include: g.cfg.Include,
		Exclude: g.cfg.Exclude,
	})
	if err != nil {
		return res, err
	}

	entries := curriculum.Flatten(doc)
	limit := g.cfg.MaxConcurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	var (
		mu       sync.Mutex
		done     int
		unlisted []string
	)
	g.Reporter.Start(len(files))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for _, f := range files {
		f := f
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			found, err := g.renderTopic(renderer, entries, f, dataErr == nil)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", f.RelPath, err)
			}
			mu.Lock()
			defer mu.Unlock()
			done++
			g.Reporter.Update(done, f.PagePath)
			if !found && dataErr == nil {
				unlisted = append(unlisted, f.PagePath)
			}
			return nil
		})
	}
	err = eg.Wait()
	g.Reporter.Finish()
	if err != nil {
		return res, err
	}

	sort.Strings(unlisted)
	res.Topics = len(files)
	res.Unlisted = unlisted

	if dataErr != nil {
		return res, fmt.Errorf("loading %s: %w", g.cfg.DataFile, dataErr)
	}
	return res, nil
}

func (g *Generator) writeIndex(r *Renderer, doc *curriculum.Document, dataErr error) error {
	f, err := os.Create(filepath.Join(g.cfg.OutputDir, g.cfg.IndexPage))
	if err != nil {
		return err
	}
	defer f.Close()

	if dataErr != nil {
		return r.RenderIndexError(f, dataErr)
	}
	return r.RenderIndex(f, BuildIndexView(doc, ""))
}

// renderTopic writes one topic page and reports whether it was found in
// the learning path.
func (g *Generator) renderTopic(r *Renderer, entries []curriculum.FlatEntry, f walker.FileInfo, dataOK bool) (bool, error) {
	src, err := os.ReadFile(f.Path)
	if err != nil {
		return false, err
	}
	topic, err := ParseTopic(NewMarkdown(), src, f.RelPath, f.PagePath)
	if err != nil {
		return false, err
	}

	nav, found := NewNavigation(entries, f.PagePath, basePath(f.PagePath), g.cfg.IndexPage)
	if !found && dataOK {
		log.Printf("site: %s is not in the learning path, rendering without prev/next", f.PagePath)
	}

	outPath := filepath.Join(g.cfg.OutputDir, filepath.FromSlash(f.PagePath))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return found, err
	}
	out, err := os.Create(outPath)
	if err != nil {
		return found, err
	}
	defer out.Close()

	return found, r.RenderTopic(out, topic, nav)
}
