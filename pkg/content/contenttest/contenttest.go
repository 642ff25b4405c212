// Package contenttest seeds a content.Store with a small New York data set. Everything goes through the store's
// public create operations, so fixtures never share memory with the store.
package contenttest

import (
	"time"

	"github.com/silktrader/statuary/pkg/clock"
	"github.com/silktrader/statuary/pkg/content"
)

// Epoch is the instant the seeded store's clock is frozen at.
var Epoch = time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)

// Fixtures exposes the seeded records, with their generated identifiers.
type Fixtures struct {
	Historian, Guide, Explorer, Buff content.User

	Liberty, Thinker, Bull content.Statue

	TorchNote, CrownStory content.Annotation

	Praise, Reply content.Comment

	Revolutionary, Philosophy content.PremiumTour
}

// NewStore returns a store whose clock is frozen at Epoch, seeded with Seed.
func NewStore() (*content.Store, *clock.Fixed, Fixtures) {
	var frozen = clock.NewFixed(Epoch)
	var store = content.New(content.Config{Clock: frozen})
	return store, frozen, Seed(store)
}

func Seed(store *content.Store) (f Fixtures) {
	f.Historian = store.CreateUser(content.NewUser{FarcasterId: "1001", Username: "arthistorian", Avatar: "/avatars/historian.jpg"})
	f.Guide = store.CreateUser(content.NewUser{FarcasterId: "1002", Username: "tourguide_ny", Avatar: "/avatars/guide.jpg"})
	f.Explorer = store.CreateUser(content.NewUser{FarcasterId: "1003", Username: "ar_explorer", Avatar: "/avatars/explorer.jpg"})
	f.Buff = store.CreateUser(content.NewUser{Username: "history_buff", WalletAddress: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"})

	f.Liberty = store.CreateStatue(content.NewStatue{
		Name:         "Liberty Enlightening the World",
		Location:     content.Location{Lat: 40.6892, Lon: -74.0445, Address: "Liberty Island, New York, NY"},
		Description:  "A symbol of freedom and democracy, gifted by France to the United States.",
		ARModelURL:   "/models/liberty.glb",
		ThumbnailURL: "/images/liberty-thumb.jpg",
	})
	f.Thinker = store.CreateStatue(content.NewStatue{
		Name:         "The Thinker",
		Location:     content.Location{Lat: 40.7829, Lon: -73.9654, Address: "Metropolitan Museum, New York, NY"},
		Description:  "Auguste Rodin's bronze sculpture depicting a man in deep thought.",
		ARModelURL:   "/models/thinker.glb",
		ThumbnailURL: "/images/thinker-thumb.jpg",
	})
	f.Bull = store.CreateStatue(content.NewStatue{
		Name:         "Charging Bull",
		Location:     content.Location{Lat: 40.7056, Lon: -74.0134, Address: "Bowling Green, New York, NY"},
		Description:  "A bronze sculpture symbolizing aggressive financial optimism and prosperity.",
		ARModelURL:   "/models/bull.glb",
		ThumbnailURL: "/images/bull-thumb.jpg",
	})

	f.TorchNote = store.CreateAnnotation(content.NewAnnotation{
		StatueId: f.Liberty.StatueId,
		UserId:   f.Historian.UserId,
		Type:     content.Text,
		Content:  "The torch represents enlightenment and the path to liberty.",
		Region:   content.Region{X: 0.3, Y: 0.1, Width: 0.2, Height: 0.3},
		Author:   content.Author{Username: f.Historian.Username, Avatar: f.Historian.Avatar},
	})
	f.CrownStory = store.CreateAnnotation(content.NewAnnotation{
		StatueId:   f.Liberty.StatueId,
		UserId:     f.Guide.UserId,
		Type:       content.Audio,
		Content:    "Listen to the story behind the crown's seven spikes...",
		ContentURL: "/audio/liberty-story.mp3",
		Region:     content.Region{X: 0.4, Y: 0.05, Width: 0.2, Height: 0.2},
		Author:     content.Author{Username: f.Guide.Username, Avatar: f.Guide.Avatar},
	})

	f.Praise = store.CreateComment(content.NewComment{
		StatueId: f.Liberty.StatueId,
		UserId:   f.Explorer.UserId,
		Content:  "Amazing to see this in AR! The details are incredible.",
		Author:   content.Author{Username: f.Explorer.Username, Avatar: f.Explorer.Avatar},
	})
	f.Reply = store.CreateComment(content.NewComment{
		StatueId: f.Liberty.StatueId,
		UserId:   f.Buff.UserId,
		ParentId: f.Praise.CommentId,
		Content:  "I agree! The AR annotations really bring the history to life.",
		Author:   content.Author{Username: f.Buff.Username},
	})

	f.Revolutionary = store.CreateTour(content.NewTour{
		Title:        "Revolutionary Monuments of NYC",
		Description:  "Explore the stories behind America's founding through AR-enhanced monuments.",
		Price:        1.99,
		Duration:     "45 min",
		ThumbnailURL: "/images/revolutionary-tour.jpg",
		StatueIds:    []string{f.Liberty.StatueId, f.Bull.StatueId},
		Rating:       4.8,
		ReviewCount:  124,
		Author:       content.TourAuthor{Name: "NYC History Society", Avatar: "/avatars/nychistory.jpg", Verified: true},
	})
	f.Philosophy = store.CreateTour(content.NewTour{
		Title:        "Art & Philosophy Walking Tour",
		Description:  "Discover the philosophical meanings behind famous sculptures.",
		Price:        2.99,
		Duration:     "60 min",
		ThumbnailURL: "/images/philosophy-tour.jpg",
		StatueIds:    []string{f.Thinker.StatueId},
		Rating:       4.6,
		ReviewCount:  89,
		Author:       content.TourAuthor{Name: "Dr. Sarah Chen", Avatar: "/avatars/chen.jpg", Verified: true},
	})

	// refresh statues, their counters changed after the annotations and comments above
	f.Liberty, _ = store.Statue(f.Liberty.StatueId)
	return f
}
