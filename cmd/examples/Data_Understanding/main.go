// Data understanding walkthrough: loads both wine files, profiles the
// combined table, writes the markdown report and every figure into the
// results directory, and previews the train/test machinery that the next
// stage will use. Nothing is fitted here.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"winescope/pkg/config"
	"winescope/pkg/dataset"
	"winescope/pkg/figures"
	"winescope/pkg/preprocess"
	"winescope/pkg/profile"
	"winescope/pkg/wine"
)

// focusAttrs are the attributes compared per class in the figures, chosen
// to cover the framing hypotheses plus the heaviest-tailed column.
var focusAttrs = []wine.Attribute{
	wine.VolatileAcidity,
	wine.TotalSulfurDioxide,
	wine.ResidualSugar,
	wine.Chlorides,
	wine.Alcohol,
}

func main() {
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	fmt.Println("=== Loading ===")
	loader := dataset.NewLoader(logger)
	ds, err := loader.LoadPair(cfg.Data.Red, cfg.Data.White)
	if err != nil {
		logger.Fatal("load datasets", zap.Error(err))
	}
	fmt.Printf("Loaded %d wines, %d columns + type label.\n\n", ds.Len(), len(ds.Header))

	fmt.Println("=== Profiling ===")
	report, err := profile.Build(ds, profile.Options{
		TopCorrelations: cfg.TopCorrelations,
		SampleRows:      cfg.SampleRows,
	})
	if err != nil {
		logger.Fatal("profile dataset", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.Results, 0o755); err != nil {
		logger.Fatal("create results dir", zap.Error(err))
	}
	mdPath := filepath.Join(cfg.Results, "data_understanding.md")
	if err := os.WriteFile(mdPath, []byte(report.Markdown()), 0o644); err != nil {
		logger.Fatal("write report", zap.Error(err))
	}
	fmt.Printf("Report written to %s\n\n", mdPath)

	fmt.Println("=== Class balance ===")
	for _, c := range []wine.Color{wine.Red, wine.White} {
		fmt.Printf("%-6s %5d  (%.1f%%)\n", c, report.Balance.Counts[c], 100*report.Balance.Proportions[c])
	}
	fmt.Printf("Imbalance ratio %.2f:1, majority %q.\n\n", report.Balance.Ratio, report.Balance.Majority())

	fmt.Println("=== Strongest correlations ===")
	for _, p := range report.TopCorr {
		fmt.Printf("%+.3f  %s vs %s\n", p.R, p.A, p.B)
	}
	fmt.Println()

	fmt.Println("=== Figures ===")
	renderFigures(logger, cfg, ds, report)
	fmt.Println()

	fmt.Println("=== Streaming recount ===")
	out := make(chan wine.Sample)
	_, errc, err := loader.Stream(cfg.Data.Red, wine.Red, out)
	if err != nil {
		logger.Fatal("open stream", zap.Error(err))
	}
	streamed := 0
	for range out {
		streamed++
	}
	if err := <-errc; err != nil {
		logger.Fatal("stream rows", zap.Error(err))
	}
	fmt.Printf("Single-pass stream of %s saw %d rows; the loaded table has %d red.\n\n",
		cfg.Data.Red, streamed, report.Balance.Counts[wine.Red])

	fmt.Println("=== Train/test preview ===")
	dedup := preprocess.Deduplicate(ds)
	fmt.Printf("Dropping exact duplicates would keep %d of %d rows.\n", dedup.Len(), ds.Len())

	train, test, err := dataset.StratifiedSplit(ds, 0.2, cfg.Seed)
	if err != nil {
		logger.Fatal("split dataset", zap.Error(err))
	}
	fmt.Printf("train %d (red %d, white %d)  test %d (red %d, white %d)\n",
		train.Len(), train.ColorCounts()[wine.Red], train.ColorCounts()[wine.White],
		test.Len(), test.ColorCounts()[wine.Red], test.ColorCounts()[wine.White])

	scaler := &preprocess.StandardScaler{}
	if _, err := preprocess.FitTransform(scaler, train.FeatureMatrix()); err != nil {
		logger.Fatal("fit scaler", zap.Error(err))
	}
	scaledTest, err := scaler.Transform(test.FeatureMatrix())
	if err != nil {
		logger.Fatal("scale held-out rows", zap.Error(err))
	}
	fmt.Printf("Held-out rows scaled with train statistics only; first row %s = %.2f.\n\n",
		wine.Alcohol, scaledTest[0][wine.Alcohol])

	fmt.Println("=== Notes ===")
	for _, n := range report.Insights {
		fmt.Printf("- %s\n", n)
	}
	logger.Info("data understanding complete",
		zap.Int("rows", ds.Len()),
		zap.String("report", mdPath),
		zap.String("results", cfg.Results),
	)
}

type figure struct {
	name string
	draw func(path string) error
}

// renderFigures writes every figure into the results directory, failing the
// run on the first figure that does not render.
func renderFigures(logger *zap.Logger, cfg *config.Config, ds *dataset.Dataset, report *profile.Report) {
	saves := []figure{
		{"class_balance.png", func(p string) error { return figures.ClassBalance(report.Balance, p) }},
		{"quality_distribution.png", func(p string) error { return figures.QualityDistribution(report.Quality, p) }},
		{"correlation_heatmap.png", func(p string) error { return figures.CorrelationHeatMap(report.Corr, p) }},
	}
	for _, a := range focusAttrs {
		saves = append(saves,
			figure{
				name: "hist_" + slug(a) + ".png",
				draw: func(p string) error {
					h, err := profile.NewHistogram(ds, a, cfg.Bins)
					if err != nil {
						return err
					}
					return figures.FeatureHistogram(h, p)
				},
			},
			figure{
				name: "box_" + slug(a) + ".png",
				draw: func(p string) error { return figures.FeatureBox(ds, a, p) },
			},
		)
	}

	for _, s := range saves {
		path := filepath.Join(cfg.Results, s.name)
		if err := s.draw(path); err != nil {
			logger.Fatal("render figure", zap.String("figure", s.name), zap.Error(err))
		}
		fmt.Printf("Saved %s\n", path)
	}
}

func slug(a wine.Attribute) string {
	return strings.ReplaceAll(a.String(), " ", "_")
}
