package content

import "sort"

// CreateStatue stores a statue with zeroed counters.
func (s *Store) CreateStatue(data NewStatue) Statue {
	s.mu.Lock()
	defer s.mu.Unlock()

	var statue = Statue{
		StatueId:     s.ids.New("statue"),
		Name:         data.Name,
		Location:     data.Location,
		Description:  data.Description,
		ARModelURL:   data.ARModelURL,
		ThumbnailURL: data.ThumbnailURL,
	}
	s.statues = append(s.statues, statue)
	return statue
}

func (s *Store) Statues() []Statue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]Statue, 0, len(s.statues)), s.statues...)
}

func (s *Store) Statue(statueId string) (Statue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.statueIndex(statueId); i >= 0 {
		return s.statues[i], true
	}
	return Statue{}, false
}

// UpdateStatue merges the provided fields. Counters are derived and can't be set.
func (s *Store) UpdateStatue(statueId string, update StatueUpdate) (Statue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var i = s.statueIndex(statueId)
	if i < 0 {
		return Statue{}, false
	}
	var statue = &s.statues[i]
	if update.Name != nil {
		statue.Name = *update.Name
	}
	if update.Location != nil {
		statue.Location = *update.Location
	}
	if update.Description != nil {
		statue.Description = *update.Description
	}
	if update.ARModelURL != nil {
		statue.ARModelURL = *update.ARModelURL
	}
	if update.ThumbnailURL != nil {
		statue.ThumbnailURL = *update.ThumbnailURL
	}
	return *statue, true
}

/*
NearbyStatues returns the statues lying within radiusKm of the given point, closest first.

The search is a linear scan computing haversine distances against every statue; there's no spatial index.
Statues at exactly radiusKm are included. Equidistant statues keep their insertion order.
*/
func (s *Store) NearbyStatues(lat, lon, radiusKm float64) []NearbyStatue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var nearby = make([]NearbyStatue, 0)
	for _, statue := range s.statues {
		var distance = Haversine(lat, lon, statue.Location.Lat, statue.Location.Lon)
		if distance <= radiusKm {
			nearby = append(nearby, NearbyStatue{Statue: statue, DistanceKm: distance})
		}
	}
	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby
}

func (s *Store) statueIndex(statueId string) int {
	return indexOf(s.statues, func(st Statue) bool { return st.StatueId == statueId })
}
