package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ytreport/internal/application"
	"ytreport/internal/config"
	"ytreport/internal/infrastructure/i18n"
	"ytreport/internal/infrastructure/youtrack"
	"ytreport/internal/ports/output"
	"ytreport/pkg/report"
	"ytreport/pkg/tz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, err := fragmentSource(cfg.LocalesDir)
	if err != nil {
		log.Fatalf("❌ Locales: %v", err)
	}
	// unregistered locales resolve through the fallback, not through LOCALE
	defaultLocale := cfg.FallbackLocale
	if defaultLocale == "" {
		defaultLocale = cfg.Locale
	}
	registry := i18n.NewRegistry(defaultLocale)
	localization := application.NewLocalizationService(source, registry, cfg.FallbackLocale)
	locale, err := localization.Init(ctx, cfg.Locale)
	if err != nil {
		log.Fatalf("❌ Localization: %v", err)
	}
	log.Printf("i18n: available=%v registered=%v", localization.Locales(), registry.Locales())

	client := youtrack.NewClient(cfg.HTTPTimeout, map[string]youtrack.Service{
		cfg.ServiceID: {BaseURL: cfg.ServiceURL, Token: cfg.ServiceToken},
	})
	fetch := application.NewServiceFetcher(client.Fetch, cfg.ServiceID)
	reports := application.NewReportService(fetch, output.IssueDecoder(youtrack.DecodeIssues), cfg.ServiceID, cfg.ReportTop)

	renderer := report.NewRenderer(registry, locale, tz.Load(cfg.Timezone))
	rep, err := reports.Build(ctx, cfg.ReportQuery)
	if err != nil {
		log.Printf("❌ Report: %v", err)
		_ = renderer.RenderError(os.Stdout, err)
		os.Exit(1)
	}
	if err := renderer.Render(os.Stdout, rep); err != nil {
		log.Printf("❌ Render: %v", err)
		os.Exit(1)
	}
}

func fragmentSource(dir string) (output.FragmentSource, error) {
	if dir == "" {
		return i18n.EmbeddedSource()
	}
	return i18n.DirSource(dir)
}
