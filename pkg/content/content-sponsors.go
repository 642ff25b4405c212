package content

// CreateSponsor stores a sponsor exhibit. Callers check the statue and the date range beforehand.
func (s *Store) CreateSponsor(data NewSponsor) SponsorExhibit {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sponsor = SponsorExhibit{
		SponsorId:    s.ids.New("sponsor"),
		StatueId:     data.StatueId,
		BrandName:    data.BrandName,
		CampaignURL:  data.CampaignURL,
		ARContentURL: data.ARContentURL,
		StartDate:    data.StartDate,
		EndDate:      data.EndDate,
	}
	s.sponsors = append(s.sponsors, sponsor)
	return sponsor
}

func (s *Store) Sponsors() []SponsorExhibit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]SponsorExhibit, 0, len(s.sponsors)), s.sponsors...)
}

func (s *Store) Sponsor(sponsorId string) (SponsorExhibit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.sponsors, func(sp SponsorExhibit) bool { return sp.SponsorId == sponsorId }); i >= 0 {
		return s.sponsors[i], true
	}
	return SponsorExhibit{}, false
}

func (s *Store) SponsorsByStatue(statueId string) []SponsorExhibit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.sponsors, func(sp SponsorExhibit) bool { return sp.StatueId == statueId })
}
