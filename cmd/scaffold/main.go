package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/scaffoldhq/scaffold/internal/analyzer"
	"github.com/scaffoldhq/scaffold/internal/config"
	"github.com/scaffoldhq/scaffold/internal/domain"
	"github.com/scaffoldhq/scaffold/internal/generator"
)

var (
	green  = color.New(color.FgGreen, color.Bold)
	red    = color.New(color.FgRed, color.Bold)
	yellow = color.New(color.FgYellow, color.Bold)
	cyan   = color.New(color.FgCyan, color.Bold)
	bold   = color.New(color.Bold)
	dim    = color.New(color.Faint)
)

func main() {
	godotenv.Load()

	// Flags
	targetURL := flag.String("url", "", "Target URL to scaffold tests for")
	outputDir := flag.String("output", "", "Output directory (default: from OUTPUT_DIR)")
	headless := flag.Bool("headless", true, "Run browser in headless mode")
	timeout := flag.Duration("timeout", 2*time.Minute, "Pipeline timeout")
	verbose := flag.Bool("verbose", false, "Verbose output")

	flag.Parse()

	if *targetURL == "" {
		red.Println("❌ -url is required")
		fmt.Println("   Usage: scaffold -url https://app.example.com/login")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		red.Printf("❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.Browser.Headless = *headless

	outDir := *outputDir
	if outDir == "" {
		outDir = cfg.Output.Dir
	}

	// Setup logger
	var logger *zap.Logger
	if *verbose {
		logger, _ = zap.NewDevelopment()
	} else {
		logCfg := zap.NewProductionConfig()
		logCfg.OutputPaths = []string{"/dev/null"}
		logger, _ = logCfg.Build()
	}
	defer logger.Sync()

	printBanner()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	startTime := time.Now()

	fmt.Printf("🎯 Target: %s\n", *targetURL)
	fmt.Printf("📁 Output: %s\n", outDir)
	fmt.Println()

	//==========================================================================
	// STEP 1: ANALYSIS
	//==========================================================================
	printStep(1, "Analysis", fmt.Sprintf("Inspecting %s", *targetURL))

	info, err := runAnalysis(ctx, cfg.Browser, *targetURL, logger)
	if err != nil {
		red.Printf("   ❌ Analysis failed: %v\n", err)
		os.Exit(1)
	}

	green.Printf("   ✓ %s page with %d elements, %d forms, %d nav links\n",
		info.PageType, len(info.Elements), len(info.Forms), len(info.Navigation))
	if len(info.Elements) == 0 {
		yellow.Println("   ⚠ No interactive elements found; generated tests will be minimal")
	}

	//==========================================================================
	// STEP 2: GENERATION
	//==========================================================================
	printStep(2, "Generation", "Building test plan, page object, tests and data...")

	svc := generator.NewService(generator.LayoutFromOutput(cfg.Output), logger)
	set, err := svc.GenerateAll(info)
	if err != nil {
		red.Printf("   ❌ Generation failed: %v\n", err)
		os.Exit(1)
	}

	if err := set.WriteFiles(outDir); err != nil {
		red.Printf("   ❌ Failed to write artifacts: %v\n", err)
		os.Exit(1)
	}

	green.Printf("   ✓ %d artifacts written\n", len(set.Files))

	//==========================================================================
	// SUMMARY
	//==========================================================================
	elapsed := time.Since(startTime)

	fmt.Println()
	bold.Println("Generated Files:")
	paths := set.Paths()
	sort.Strings(paths)
	for i, p := range paths {
		branch := "├──"
		if i == len(paths)-1 {
			branch = "└──"
		}
		fmt.Printf("   %s %s\n", branch, filepath.Join(outDir, p))
	}

	fmt.Println()
	fmt.Printf("⏱️  Completed in %s\n", elapsed.Round(time.Millisecond))
	fmt.Println()
	cyan.Println("🚀 Next Steps:")
	fmt.Printf("   cd %s\n", outDir)
	fmt.Printf("   pytest %s/test_%s.py -v\n", cfg.Output.TestDir, set.FileName)
	fmt.Printf("   pytest -m P0 -v\n")
}

func runAnalysis(ctx context.Context, browserCfg config.BrowserConfig, url string, logger *zap.Logger) (*domain.PageInfo, error) {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("   Analyzing..."),
		progressbar.OptionSpinnerType(14),
	)

	done := make(chan bool)
	go func() {
		for {
			select {
			case <-done:
				return
			default:
				bar.Add(1)
				time.Sleep(100 * time.Millisecond)
			}
		}
	}()

	an := analyzer.New(browserCfg, logger)
	info, err := an.Analyze(ctx, url, nil)
	close(done)
	bar.Finish()
	fmt.Println()

	return info, err
}

func printBanner() {
	cyan.Println(`
  ███████╗ ██████╗ █████╗ ███████╗███████╗ ██████╗ ██╗     ██████╗
  ██╔════╝██╔════╝██╔══██╗██╔════╝██╔════╝██╔═══██╗██║     ██╔══██╗
  ███████╗██║     ███████║█████╗  █████╗  ██║   ██║██║     ██║  ██║
  ╚════██║██║     ██╔══██║██╔══╝  ██╔══╝  ██║   ██║██║     ██║  ██║
  ███████║╚██████╗██║  ██║██║     ██║     ╚██████╔╝███████╗██████╔╝
  ╚══════╝ ╚═════╝╚═╝  ╚═╝╚═╝     ╚═╝      ╚═════╝ ╚══════╝╚═════╝`)
	dim.Println("  UI test scaffolding: analyze a page, generate its test suite")
	fmt.Println()
}

func printStep(n int, name, desc string) {
	fmt.Println()
	bold.Printf("━━ Step %d: %s ", n, name)
	fmt.Println(strings.Repeat("━", max(0, 50-len(name))))
	dim.Printf("   %s\n", desc)
}
