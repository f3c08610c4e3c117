package wikisearch

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/arvasato/wikipath/graphfile"
	"github.com/arvasato/wikipath/metadata"
)

// Reader combines an open graphfile.Graph and metadata.Store, and adds
// the input-parsing and output-formatting helpers the search tools need.
type Reader struct {
	graph        *graphfile.Graph
	metadata     metadata.Store
	metadataConn *metadata.SQLiteStore
	logger       *zap.Logger
	rng          *rand.Rand
}

// Open opens the CSR graph file at graphFilename and its companion
// metadata store, derived by stripping the graph file's extension and
// appending ".metadata". If logger is nil, a no-op logger is used.
func Open(graphFilename string, policy graphfile.LockPolicy, logger *zap.Logger) (*Reader, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	g, err := graphfile.Open(graphFilename, policy, logger)
	if err != nil {
		return nil, fmt.Errorf("wikisearch: open graph %s: %w", graphFilename, err)
	}
	metadataFilename := stripExtension(graphFilename) + ".metadata"
	store, err := metadata.OpenSQLiteStore(metadataFilename)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("wikisearch: open metadata %s: %w", metadataFilename, err)
	}
	return &Reader{
		graph:        g,
		metadata:     store,
		metadataConn: store,
		logger:       logger,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func stripExtension(s string) string {
	if i := strings.LastIndexByte(s, '.'); i != -1 {
		return s[:i]
	}
	return s
}

// Close releases the graph mapping and the metadata store.
func (r *Reader) Close() error {
	metaErr := r.metadataConn.Close()
	graphErr := r.graph.Close()
	if graphErr != nil {
		return graphErr
	}
	return metaErr
}

// Graph returns the underlying graphfile.Graph.
func (r *Reader) Graph() *graphfile.Graph { return r.graph }

// Metadata returns the underlying metadata.Store.
func (r *Reader) Metadata() metadata.Store { return r.metadata }

// IsValidPageId reports whether id names a vertex in the graph.
func (r *Reader) IsValidPageId(id uint32) bool {
	return id > 0 && id < r.graph.VertexCount()
}

// RandomPageId picks a vertex uniformly among those with at least one
// forward and one backward edge, trying up to 20 times before returning
// whatever candidate it last drew, so the function always terminates in
// bounded time. Returns 0 if the graph has fewer than two vertices.
func (r *Reader) RandomPageId() uint32 {
	size := r.graph.VertexCount()
	if size < 2 {
		r.logger.Warn("graph is empty")
		return 0
	}
	var candidate uint32
	for attempt := 0; attempt < 20; attempt++ {
		candidate = uint32(1 + r.rng.Int63n(int64(size-1)))
		if len(r.graph.ForwardEdges(candidate)) == 0 {
			continue
		}
		if len(r.graph.BackwardEdges(candidate)) == 0 {
			continue
		}
		break
	}
	return candidate
}

// ParsePageArgument resolves a CLI page reference: "#123" for a numeric
// id, "?" for a random page, or any other string as a literal,
// case-sensitive title lookup. It returns 0 and logs a diagnostic if
// the reference does not resolve.
func (r *Reader) ParsePageArgument(arg string) uint32 {
	if arg == "" {
		r.logger.Warn("invalid page reference: empty string")
		return 0
	}

	if arg[0] == '#' {
		n, err := strconv.ParseInt(arg[1:], 10, 64)
		if err != nil || arg[1:] == "" {
			r.logger.Warn("page id is malformed", zap.String("arg", arg))
			return 0
		}
		id := uint32(n)
		if n < 0 || int64(id) != n || !r.IsValidPageId(id) {
			r.logger.Warn("page id is out of range", zap.String("arg", arg))
			return 0
		}
		return id
	}

	if arg == "?" {
		return r.RandomPageId()
	}

	page, ok, err := r.metadata.GetPageByTitle(arg)
	if err != nil {
		r.logger.Warn("metadata lookup failed", zap.String("arg", arg), zap.Error(err))
		return 0
	}
	if !ok {
		r.logger.Warn("page title not found (titles are case-sensitive)", zap.String("arg", arg))
		return 0
	}
	return page.ID
}
