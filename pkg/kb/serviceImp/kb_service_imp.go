// pkg/kb/serviceImp/kb_service_imp.go

package serviceImp

import (
	"context"
	"math"
	"sort"
	"strings"

	"agriai/entities"
	"agriai/pkg/kb/embedder"
	"agriai/pkg/kb/repository"
)

type KBSvc struct {
	repo repository.KBRepository
	emb  *embedder.Client
}

func New(repo repository.KBRepository, emb *embedder.Client) *KBSvc {
	return &KBSvc{repo: repo, emb: emb}
}

// UpsertDocument stores an advisory document and its chunks. Embedding
// failures degrade to keyword-searchable chunks with nil vectors.
func (s *KBSvc) UpsertDocument(title, tags, text, sourceURL string) (*entities.KBDocument, int, error) {
	doc := &entities.KBDocument{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.repo.CreateDoc(doc); err != nil {
		return nil, 0, err
	}

	chunks := chunkText(text, 1000)
	if len(chunks) == 0 {
		return doc, 0, nil
	}

	var vecs [][]float32
	if s.emb != nil {
		if v, err := s.emb.Embed(context.Background(), chunks); err == nil {
			vecs = v
		}
	}

	rows := make([]entities.KBChunk, len(chunks))
	for i := range chunks {
		var emb []byte
		if i < len(vecs) {
			emb = embedder.FloatsToBytes(vecs[i])
		}
		rows[i] = entities.KBChunk{DocID: doc.DocID, Ord: i, Text: chunks[i], Embedding: emb}
	}
	if err := s.repo.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return doc, len(rows), nil
}

// Search ranks chunks by cosine similarity when the query embeds, otherwise
// by keyword overlap.
func (s *KBSvc) Search(query string, k int) ([]entities.KBChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}

	chunks, err := s.repo.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	var qvec []float32
	if s.emb != nil {
		if v, err := s.emb.Embed(context.Background(), []string{q}); err == nil && len(v) > 0 {
			qvec = v[0]
		}
	}

	type scored struct {
		ch entities.KBChunk
		sc float64
	}
	list := make([]scored, 0, len(chunks))
	if len(qvec) > 0 {
		for _, ch := range chunks {
			sc := cosine(qvec, embedder.BytesToFloats(ch.Embedding))
			if sc > 0 {
				list = append(list, scored{ch, sc})
			}
		}
	} else {
		terms := strings.Fields(strings.ToLower(q))
		for _, ch := range chunks {
			if sc := overlap(strings.ToLower(ch.Text), terms); sc > 0 {
				list = append(list, scored{ch, sc})
			}
		}
	}
	if len(list) == 0 {
		return nil, nil
	}

	sort.SliceStable(list, func(i, j int) bool { return list[i].sc > list[j].sc })
	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.KBChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, list[i].ch)
	}
	return out, nil
}

func (s *KBSvc) ListDocs() ([]entities.KBDocument, error) {
	return s.repo.ListDocs()
}

func (s *KBSvc) DocsMeta(ids []uint) (map[uint]entities.KBDocument, error) {
	return s.repo.DocsByIDs(ids)
}

// chunkText splits on newlines once a chunk passes maxRunes.
func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	var parts []string
	var cur strings.Builder
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func overlap(text string, terms []string) float64 {
	var hits float64
	for _, t := range terms {
		if strings.Contains(text, t) {
			hits++
		}
	}
	return hits
}
