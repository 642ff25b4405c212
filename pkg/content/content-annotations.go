package content

import "github.com/silktrader/statuary/pkg/ntime"

// CreateAnnotation stores the annotation and bumps the owning statue's counter within the same critical section.
// The statue's existence isn't checked: orphaned annotations simply don't count towards any statue.
func (s *Store) CreateAnnotation(data NewAnnotation) Annotation {
	s.mu.Lock()
	defer s.mu.Unlock()

	var annotation = Annotation{
		AnnotationId: s.ids.New("annotation"),
		StatueId:     data.StatueId,
		UserId:       data.UserId,
		Type:         data.Type,
		Content:      data.Content,
		ContentURL:   data.ContentURL,
		Region:       data.Region,
		CreatedAt:    ntime.From(s.clock.Now()),
		Author:       data.Author,
	}
	s.annotations = append(s.annotations, annotation)

	if i := s.statueIndex(data.StatueId); i >= 0 {
		s.statues[i].AnnotationCount++
	}
	return annotation
}

func (s *Store) Annotation(annotationId string) (Annotation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.annotationIndex(annotationId); i >= 0 {
		return s.annotations[i], true
	}
	return Annotation{}, false
}

func (s *Store) Annotations(page Page) []Annotation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.annotations, page)
}

func (s *Store) AnnotationsByStatue(statueId string, page Page) []Annotation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(filter(s.annotations, func(a Annotation) bool { return a.StatueId == statueId }), page)
}

func (s *Store) AnnotationsByUser(userId string, page Page) []Annotation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(filter(s.annotations, func(a Annotation) bool { return a.UserId == userId }), page)
}

func (s *Store) UpdateAnnotation(annotationId string, update AnnotationUpdate) (Annotation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var i = s.annotationIndex(annotationId)
	if i < 0 {
		return Annotation{}, false
	}
	var annotation = &s.annotations[i]
	if update.Content != nil {
		annotation.Content = *update.Content
	}
	if update.ContentURL != nil {
		annotation.ContentURL = *update.ContentURL
	}
	if update.Region != nil {
		annotation.Region = *update.Region
	}
	return *annotation, true
}

// DeleteAnnotation removes the annotation and decrements its statue's counter, floored at zero.
func (s *Store) DeleteAnnotation(annotationId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var i = s.annotationIndex(annotationId)
	if i < 0 {
		return false
	}
	var statueId = s.annotations[i].StatueId
	s.annotations = append(s.annotations[:i], s.annotations[i+1:]...)

	if si := s.statueIndex(statueId); si >= 0 {
		decrement(&s.statues[si].AnnotationCount)
	}
	return true
}

// VoteAnnotation adds or subtracts a single vote. There's no lower bound and no per-user ledger.
func (s *Store) VoteAnnotation(annotationId string, up bool) (Annotation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var i = s.annotationIndex(annotationId)
	if i < 0 {
		return Annotation{}, false
	}
	s.annotations[i].Votes += voteDelta(up)
	return s.annotations[i], true
}

func (s *Store) annotationIndex(annotationId string) int {
	return indexOf(s.annotations, func(a Annotation) bool { return a.AnnotationId == annotationId })
}

func voteDelta(up bool) int {
	if up {
		return 1
	}
	return -1
}
