package core

import (
	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the types persisted in the embedding cache blob.
// The cache blob is small and its shape changes rarely, so the
// serializers are written by hand rather than generated.
var (
	IDMUS             = idMUS{}
	SectionMUS        = sectionMUS{}
	EmbeddingCacheMUS = embeddingCacheMUS{}
)

var (
	keywordsMUS    = ord.NewSliceSer[string](ord.String)
	vectorMUS      = ord.NewSliceSer[float32](raw.Float32)
	vectorsMUS     = ord.NewSliceSer[[]float32](vectorMUS)
	subsectionsMUS = ord.NewSliceSer[Subsection](subsectionMUS{})
	sectionsMUS    = ord.NewSliceSer[Section](sectionMUS{})
)

type idMUS struct{}

var _ mus.Serializer[ID] = idMUS{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type pageRangeMUS struct{}

var _ mus.Serializer[PageRange] = pageRangeMUS{}

func (pageRangeMUS) Marshal(p PageRange, bs []byte) (n int) {
	n = varint.Int.Marshal(p.Start, bs)
	n += varint.Int.Marshal(p.End, bs[n:])
	return n
}

func (pageRangeMUS) Unmarshal(bs []byte) (p PageRange, n int, err error) {
	p.Start, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return p, n, err
	}
	var n1 int
	p.End, n1, err = varint.Int.Unmarshal(bs[n:])
	return p, n + n1, err
}

func (pageRangeMUS) Size(p PageRange) int {
	return varint.Int.Size(p.Start) + varint.Int.Size(p.End)
}

func (pageRangeMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Int.Skip(bs)
	if err != nil {
		return n, err
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	return n + n1, err
}

type subsectionMUS struct{}

var _ mus.Serializer[Subsection] = subsectionMUS{}

func (subsectionMUS) Marshal(s Subsection, bs []byte) (n int) {
	n = ord.String.Marshal(s.Title, bs)
	n += ord.String.Marshal(s.Content, bs[n:])
	return n
}

func (subsectionMUS) Unmarshal(bs []byte) (s Subsection, n int, err error) {
	s.Title, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return s, n, err
	}
	var n1 int
	s.Content, n1, err = ord.String.Unmarshal(bs[n:])
	return s, n + n1, err
}

func (subsectionMUS) Size(s Subsection) int {
	return ord.String.Size(s.Title) + ord.String.Size(s.Content)
}

func (subsectionMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return n, err
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	return n + n1, err
}

type sectionMUS struct{}

var _ mus.Serializer[Section] = sectionMUS{}

func (sectionMUS) Marshal(s Section, bs []byte) (n int) {
	n = ord.String.Marshal(s.Number, bs)
	n += ord.String.Marshal(s.Title, bs[n:])
	n += ord.String.Marshal(s.Content, bs[n:])
	n += keywordsMUS.Marshal(s.Keywords, bs[n:])
	n += pageRangeMUS{}.Marshal(s.Pages, bs[n:])
	n += subsectionsMUS.Marshal(s.Subsections, bs[n:])
	return n
}

func (sectionMUS) Unmarshal(bs []byte) (s Section, n int, err error) {
	var n1 int
	s.Number, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return s, n, err
	}
	s.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return s, n, err
	}
	s.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return s, n, err
	}
	s.Keywords, n1, err = keywordsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return s, n, err
	}
	s.Pages, n1, err = pageRangeMUS{}.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return s, n, err
	}
	s.Subsections, n1, err = subsectionsMUS.Unmarshal(bs[n:])
	n += n1
	return s, n, err
}

func (sectionMUS) Size(s Section) int {
	return ord.String.Size(s.Number) +
		ord.String.Size(s.Title) +
		ord.String.Size(s.Content) +
		keywordsMUS.Size(s.Keywords) +
		pageRangeMUS{}.Size(s.Pages) +
		subsectionsMUS.Size(s.Subsections)
}

func (sectionMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = ord.String.Skip(bs)
	if err != nil {
		return n, err
	}
	for _, skip := range []func([]byte) (int, error){
		ord.String.Skip,
		ord.String.Skip,
		keywordsMUS.Skip,
		pageRangeMUS{}.Skip,
		subsectionsMUS.Skip,
	} {
		n1, err = skip(bs[n:])
		n += n1
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

type embeddingCacheMUS struct{}

var _ mus.Serializer[EmbeddingCache] = embeddingCacheMUS{}

func (embeddingCacheMUS) Marshal(c EmbeddingCache, bs []byte) (n int) {
	n = varint.Uint32.Marshal(c.SchemaVersion, bs)
	n += ord.String.Marshal(c.Collection, bs[n:])
	n += IDMUS.Marshal(c.Fingerprint, bs[n:])
	n += sectionsMUS.Marshal(c.Sections, bs[n:])
	n += vectorsMUS.Marshal(c.Vectors, bs[n:])
	return n
}

func (embeddingCacheMUS) Unmarshal(bs []byte) (c EmbeddingCache, n int, err error) {
	var n1 int
	c.SchemaVersion, n, err = varint.Uint32.Unmarshal(bs)
	if err != nil {
		return c, n, err
	}
	c.Collection, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return c, n, err
	}
	c.Fingerprint, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return c, n, err
	}
	c.Sections, n1, err = sectionsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return c, n, err
	}
	c.Vectors, n1, err = vectorsMUS.Unmarshal(bs[n:])
	n += n1
	return c, n, err
}

func (embeddingCacheMUS) Size(c EmbeddingCache) int {
	return varint.Uint32.Size(c.SchemaVersion) +
		ord.String.Size(c.Collection) +
		IDMUS.Size(c.Fingerprint) +
		sectionsMUS.Size(c.Sections) +
		vectorsMUS.Size(c.Vectors)
}

func (embeddingCacheMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = varint.Uint32.Skip(bs)
	if err != nil {
		return n, err
	}
	for _, skip := range []func([]byte) (int, error){
		ord.String.Skip,
		IDMUS.Skip,
		sectionsMUS.Skip,
		vectorsMUS.Skip,
	} {
		n1, err = skip(bs[n:])
		n += n1
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
