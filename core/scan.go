package core

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gitsleuth/gitsleuth/internal/contract"
	"github.com/gitsleuth/gitsleuth/internal/outwriter"
	"github.com/gitsleuth/gitsleuth/schema"
)

// ExecuteScan runs the full history audit and renders the report in the
// configured output mode. It returns ErrNotARepository when the target is not
// under version control and ErrHighSeverityFindings when the completed scan
// contains at least one HIGH finding; both map to a failure exit code.
func ExecuteScan(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	report, err := CollectReport(ctx, cfg, client)
	if err != nil {
		return err
	}

	if err := outwriter.WriteReport(report, cfg); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	if report.BySeverity.High > 0 {
		return contract.ErrHighSeverityFindings
	}
	return nil
}

// CollectReport runs the scan pipeline without rendering: repository check,
// rule compilation, commit listing, per-commit content scan, aggregation.
// Progress banners print only in text mode so structured output stays clean.
func CollectReport(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.Report, error) {
	textMode := cfg.Output == schema.TextOut

	if textMode {
		printScanHeader(cfg)
	}

	// Checked once, before any listing. A failing check is "not a
	// repository", never a history read error. Structured modes report the
	// failure on stderr so the data stream stays clean.
	if err := client.CheckRepository(ctx, cfg.RepoPath); err != nil {
		msg := decorate(cfg, "❌ ", "") + "Not a git repository"
		if textMode {
			fmt.Println(msg)
		} else {
			fmt.Fprintln(os.Stderr, msg)
		}
		return nil, contract.ErrNotARepository
	}

	rules, err := CompileRules(cfg.Patterns)
	if err != nil {
		return nil, err
	}

	raw, err := client.GetCommitLog(ctx, cfg.RepoPath, cfg.Since)
	if err != nil {
		return nil, fmt.Errorf("history listing failed: %w", err)
	}
	commits := ParseCommitLog(raw)

	if textMode {
		fmt.Printf("Found %d commits to analyze\n\n", len(commits))
	}

	set := NewFindingSet()
	for _, findings := range scanCommits(ctx, cfg, client, commits, rules) {
		set.Add(findings...)
	}

	return set.BuildReport(time.Now()), nil
}

// scanCommits fetches and scans each commit's introduced content with a
// bounded worker pool. Results are indexed by commit position and flattened
// by the caller, so aggregate ordering matches a sequential run regardless of
// worker count. A failed content fetch is lenient: whatever bytes came back
// are still scanned, so one bad commit never aborts the whole scan.
func scanCommits(ctx context.Context, cfg *contract.Config, client contract.GitClient, commits []schema.Commit, rules []DetectorRule) [][]schema.Finding {
	results := make([][]schema.Finding, len(commits))
	sem := make(chan struct{}, cfg.Workers)
	var wg sync.WaitGroup
	var done atomic.Int64

	for i, commit := range commits {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, commit schema.Commit) {
			defer wg.Done()
			defer func() { <-sem }()

			content, err := client.GetCommitDiff(ctx, cfg.RepoPath, commit.Hash)
			if err != nil {
				contract.LogWarn(fmt.Sprintf("could not read content of commit %s", contract.ShortHash(commit.Hash)), err)
			}
			results[i] = scanCommit(commit, string(content), rules)

			if cfg.Verbose {
				n := done.Add(1)
				fmt.Fprintf(os.Stderr, "\r[%d/%d] %s", n, len(commits), contract.ShortHash(commit.Hash))
			}
		}(i, commit)
	}
	wg.Wait()

	if cfg.Verbose && len(commits) > 0 {
		fmt.Fprintln(os.Stderr)
	}
	return results
}

// scanCommit joins raw matches with commit metadata into findings, one per
// (commit, rule, match) triple.
func scanCommit(commit schema.Commit, content string, rules []DetectorRule) []schema.Finding {
	matches := ScanContent(content, rules)
	findings := make([]schema.Finding, 0, len(matches))
	for _, m := range matches {
		findings = append(findings, schema.Finding{
			Commit:   commit.Hash,
			Author:   commit.Author,
			Date:     commit.Date,
			Message:  commit.Message,
			Pattern:  m.Rule.Pattern,
			Match:    m.Text,
			Severity: m.Rule.Severity,
		})
	}
	return findings
}

// printScanHeader prints the text-mode run banner.
func printScanHeader(cfg *contract.Config) {
	fmt.Printf("\n%sGit History Security Audit\n\n", decorate(cfg, "🔍 ", ""))
	fmt.Printf("Scanning %d patterns...\n", len(cfg.Patterns))
	if cfg.Since != "" {
		fmt.Printf("Since: %s\n", cfg.Since)
	}
	fmt.Println()
}

// decorate returns the emoji prefix when emojis are enabled, the plain
// fallback otherwise.
func decorate(cfg *contract.Config, emoji, plain string) string {
	if cfg.UseEmojis {
		return emoji
	}
	return plain
}
