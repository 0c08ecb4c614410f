package documents

import (
	"context"

	"github.com/goliatone/go-recordview/pkg/record"
)

// Option customises the aggregator configuration.
type Option func(*Aggregator)

// WithLister injects the external document-listing collaborator. Without one
// the aggregator serves inline-field documents only.
func WithLister(lister Lister) Option {
	return func(a *Aggregator) {
		a.lister = lister
	}
}

// WithBaseDir overrides the client-upload base directory convention.
func WithBaseDir(dir string) Option {
	return func(a *Aggregator) {
		a.baseDir = dir
	}
}

// WithLogf installs a diagnostic hook for degraded aggregations. The
// aggregator never fails; this is the only place collaborator errors surface.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(a *Aggregator) {
		a.logf = logf
	}
}

// Aggregator merges the backend document listing with inline record fields.
// Backend-hosted files come first, then inline files. The two sources are
// not de-duplicated: a file present in both surfaces twice, matching the
// storage split of the source system.
type Aggregator struct {
	lister  Lister
	baseDir string
	logf    func(format string, args ...any)
}

// NewAggregator constructs an Aggregator with the default base directory.
func NewAggregator(options ...Option) *Aggregator {
	a := &Aggregator{baseDir: DefaultBaseDir}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

// Aggregate produces the ordered file-reference list for one category. A
// failing listing call degrades to the inline-field source; the caller always
// receives a well-formed (possibly empty) result.
func (a *Aggregator) Aggregate(ctx context.Context, req ListRequest, rec record.PartitionedRecord) []FileReference {
	var out []FileReference

	if a.lister != nil {
		listed, err := a.lister.List(ctx, req)
		if err != nil {
			a.logDegraded(req, err)
		} else {
			for _, file := range listed {
				if file.Source == "" {
					file.Source = SourceAdmin
				}
				out = append(out, file)
			}
		}
	}

	field, ok := InlineField(req.Category)
	if !ok {
		return out
	}
	for _, p := range DecodeInline(rec.Questions[field]) {
		out = append(out, ClientFile(a.baseDir, p))
	}
	return out
}

func (a *Aggregator) logDegraded(req ListRequest, err error) {
	if a.logf == nil {
		return
	}
	a.logf("documents: listing %s/%s category %s failed, serving inline fields only: %v",
		req.RecordType, req.RecordID, req.Category, err)
}
