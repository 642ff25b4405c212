package content

// CreateTour stores a tour. Callers verify that every listed statue exists.
func (s *Store) CreateTour(data NewTour) PremiumTour {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tour = PremiumTour{
		TourId:       s.ids.New("tour"),
		Title:        data.Title,
		Description:  data.Description,
		Price:        data.Price,
		Duration:     data.Duration,
		ThumbnailURL: data.ThumbnailURL,
		StatueIds:    append([]string(nil), data.StatueIds...),
		Rating:       data.Rating,
		ReviewCount:  data.ReviewCount,
		Author:       data.Author,
	}
	s.tours = append(s.tours, tour)
	return cloneTour(tour)
}

func (s *Store) Tours() []PremiumTour {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTours(s.tours)
}

func (s *Store) Tour(tourId string) (PremiumTour, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.tours, func(t PremiumTour) bool { return t.TourId == tourId }); i >= 0 {
		return cloneTour(s.tours[i]), true
	}
	return PremiumTour{}, false
}

func cloneTour(tour PremiumTour) PremiumTour {
	tour.StatueIds = append(make([]string, 0, len(tour.StatueIds)), tour.StatueIds...)
	return tour
}

func cloneTours(tours []PremiumTour) []PremiumTour {
	var cloned = make([]PremiumTour, len(tours))
	for i, t := range tours {
		cloned[i] = cloneTour(t)
	}
	return cloned
}
