package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/sjavac/internal/model"
)

const indexFile = "_index.yaml"

// ReportStore persists and retrieves verification reports.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.Report) error
	LoadReports(path m.Path) ([]m.Report, error)
	RegenerateIndex(path m.Path) error
	CleanReports(path m.Path, sources []m.Source) error
}

// LocalReportStore writes one YAML file per report, named after a short hash
// of the report, plus an _index.yaml summary.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type fileYAML struct {
	Path string `yaml:"path"`
	Hash string `yaml:"hash"`
}

type reportYAML struct {
	Source  fileYAML `yaml:"source"`
	Status  string   `yaml:"status"`
	Code    int      `yaml:"code"`
	Kind    string   `yaml:"kind,omitempty"`
	Message string   `yaml:"message,omitempty"`
	Line    int      `yaml:"line,omitempty"`
}

type indexEntry struct {
	TotalFiles    int           `yaml:"total_files"`
	AcceptedFiles int           `yaml:"accepted_files"`
	RejectedFiles int           `yaml:"rejected_files"`
	FailedFiles   int           `yaml:"failed_files"`
	Result        []resultEntry `yaml:"result"`
}

type resultEntry struct {
	Path      string `yaml:"path"`
	SourceHex string `yaml:"source_hex"`
	Status    string `yaml:"status"`
	Report    string `yaml:"report"`
}

// SaveReports writes every report with an origin into dir, creating it if
// needed.
func (rs *LocalReportStore) SaveReports(path m.Path, reports []m.Report) error {
	if path == "" {
		return errors.New("reports path is empty")
	}

	if err := os.MkdirAll(string(path), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	for _, report := range reports {
		if report.Source.Origin == nil {
			continue
		}

		data, err := yaml.Marshal(toReportYAML(report))
		if err != nil {
			return fmt.Errorf("marshal report for %s: %w", report.Source.Path(), err)
		}

		name := rs.computeReportHash(report) + ".yaml"
		if err := os.WriteFile(filepath.Join(string(path), name), data, 0o600); err != nil {
			return fmt.Errorf("write report %s: %w", name, err)
		}
	}

	return nil
}

// LoadReports reads every report in dir, sorted by source path.
func (rs *LocalReportStore) LoadReports(path m.Path) ([]m.Report, error) {
	files, err := rs.reportFiles(path)
	if err != nil {
		return nil, err
	}

	reports := make([]m.Report, 0, len(files))

	for _, name := range files {
		decoded, err := readReport(filepath.Join(string(path), name))
		if err != nil {
			return nil, err
		}

		reports = append(reports, fromReportYAML(decoded))
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Source.Path() < reports[j].Source.Path()
	})

	return reports, nil
}

// RegenerateIndex rebuilds _index.yaml from the report files in dir. The
// index is removed when no report remains.
func (rs *LocalReportStore) RegenerateIndex(path m.Path) error {
	files, err := rs.reportFiles(path)
	if err != nil {
		return err
	}

	indexPath := filepath.Join(string(path), indexFile)

	if len(files) == 0 {
		if err := os.Remove(indexPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove index: %w", err)
		}

		return nil
	}

	var idx indexEntry

	for _, name := range files {
		decoded, err := readReport(filepath.Join(string(path), name))
		if err != nil {
			return err
		}

		idx.TotalFiles++

		switch m.Status(decoded.Status) {
		case m.Accepted:
			idx.AcceptedFiles++
		case m.Rejected:
			idx.RejectedFiles++
		default:
			idx.FailedFiles++
		}

		idx.Result = append(idx.Result, resultEntry{
			Path:      decoded.Source.Path,
			SourceHex: decoded.Source.Hash,
			Status:    decoded.Status,
			Report:    name,
		})
	}

	sort.Slice(idx.Result, func(i, j int) bool {
		return idx.Result[i].Path < idx.Result[j].Path
	})

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	if err := os.WriteFile(indexPath, data, 0o600); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	return nil
}

// CleanReports deletes the reports of the given sources and regenerates the
// index. An empty sources list deletes every report.
func (rs *LocalReportStore) CleanReports(path m.Path, sources []m.Source) error {
	if path == "" {
		return errors.New("reports path is empty")
	}

	if _, err := os.Stat(string(path)); os.IsNotExist(err) {
		return nil
	}

	files, err := rs.reportFiles(path)
	if err != nil {
		return err
	}

	selected := make(map[m.Path]struct{}, len(sources))
	for _, source := range sources {
		selected[source.Path()] = struct{}{}
	}

	for _, name := range files {
		full := filepath.Join(string(path), name)

		if len(selected) > 0 {
			decoded, err := readReport(full)
			if err != nil {
				return err
			}

			if _, ok := selected[m.Path(decoded.Source.Path)]; !ok {
				continue
			}
		}

		if err := os.Remove(full); err != nil {
			return fmt.Errorf("remove report %s: %w", name, err)
		}
	}

	return rs.RegenerateIndex(path)
}

func (rs *LocalReportStore) reportFiles(path m.Path) ([]string, error) {
	if path == "" {
		return nil, errors.New("reports path is empty")
	}

	entries, err := os.ReadDir(string(path))
	if err != nil {
		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	var files []string

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == indexFile || !strings.HasSuffix(name, ".yaml") {
			continue
		}

		files = append(files, name)
	}

	return files, nil
}

// computeReportHash returns 16 hex characters identifying the report's source
// content and verdict.
func (rs *LocalReportStore) computeReportHash(report m.Report) string {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "%s\x00%s\x00%d\x00%s\x00%d",
		report.Source.Path(), originHash(report.Source), report.Code, report.Kind, report.Line)

	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

func originHash(source m.Source) string {
	if source.Origin == nil {
		return ""
	}

	return source.Origin.Hash
}

func readReport(path string) (reportYAML, error) {
	// #nosec G304 - path is built from the reports directory listing
	data, err := os.ReadFile(path)
	if err != nil {
		return reportYAML{}, fmt.Errorf("read report: %w", err)
	}

	var decoded reportYAML
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return reportYAML{}, fmt.Errorf("decode report %s: %w", filepath.Base(path), err)
	}

	return decoded, nil
}

func toReportYAML(report m.Report) reportYAML {
	return reportYAML{
		Source:  fileYAML{Path: string(report.Source.Path()), Hash: originHash(report.Source)},
		Status:  string(report.Status()),
		Code:    report.Code,
		Kind:    report.Kind,
		Message: report.Message,
		Line:    report.Line,
	}
}

func fromReportYAML(decoded reportYAML) m.Report {
	return m.Report{
		Source: m.Source{Origin: &m.File{
			Path: m.Path(decoded.Source.Path),
			Hash: decoded.Source.Hash,
		}},
		Code:    decoded.Code,
		Kind:    decoded.Kind,
		Message: decoded.Message,
		Line:    decoded.Line,
	}
}
