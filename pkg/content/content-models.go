package content

import (
	"time"

	"github.com/silktrader/statuary/pkg/ntime"
)

// Users

type User struct {
	UserId        string      `json:"userId"`
	FarcasterId   string      `json:"farcasterId,omitempty"`
	WalletAddress string      `json:"walletAddress,omitempty"`
	Username      string      `json:"username"`
	Avatar        string      `json:"avatar,omitempty"`
	CreatedAt     ntime.NTime `json:"createdAt"`
}

type NewUser struct {
	FarcasterId   string
	WalletAddress string
	Username      string
	Avatar        string
}

// UserUpdate is merged shallowly: nil fields are preserved.
type UserUpdate struct {
	Username      *string
	WalletAddress *string
	Avatar        *string
}

// Statues

type Location struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Address string  `json:"address,omitempty"`
}

type Statue struct {
	StatueId        string   `json:"statueId"`
	Name            string   `json:"name"`
	Location        Location `json:"location"`
	Description     string   `json:"description"`
	ARModelURL      string   `json:"arModelUrl,omitempty"`
	ThumbnailURL    string   `json:"thumbnailUrl,omitempty"`
	AnnotationCount int      `json:"annotationCount"`
	CommentCount    int      `json:"commentCount"`
}

type NewStatue struct {
	Name         string
	Location     Location
	Description  string
	ARModelURL   string
	ThumbnailURL string
}

type StatueUpdate struct {
	Name         *string
	Location     *Location
	Description  *string
	ARModelURL   *string
	ThumbnailURL *string
}

// NearbyStatue is a statue found by a radius search, along with its distance from the query point.
type NearbyStatue struct {
	Statue
	DistanceKm float64 `json:"distanceKm"`
}

// Annotations

type AnnotationType string

const (
	Text  AnnotationType = "text"
	Audio AnnotationType = "audio"
	Video AnnotationType = "video"
	Image AnnotationType = "image"
)

// AnnotationTypes lists the closed set of accepted annotation kinds.
var AnnotationTypes = []AnnotationType{Text, Audio, Video, Image}

// Region locates an annotation within the statue's bounding box, as 0..1 fractions.
type Region struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Author is a snapshot of the contributing user, taken when the content is created.
type Author struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

type Annotation struct {
	AnnotationId string         `json:"annotationId"`
	StatueId     string         `json:"statueId"`
	UserId       string         `json:"userId"`
	Type         AnnotationType `json:"type"`
	Content      string         `json:"content,omitempty"`
	ContentURL   string         `json:"contentUrl,omitempty"`
	Region       Region         `json:"region"`
	CreatedAt    ntime.NTime    `json:"createdAt"`
	Votes        int            `json:"votes"`
	Author       Author         `json:"author"`
}

type NewAnnotation struct {
	StatueId   string
	UserId     string
	Type       AnnotationType
	Content    string
	ContentURL string
	Region     Region
	Author     Author
}

type AnnotationUpdate struct {
	Content    *string
	ContentURL *string
	Region     *Region
}

// Comments

type Comment struct {
	CommentId string      `json:"commentId"`
	StatueId  string      `json:"statueId"`
	UserId    string      `json:"userId"`
	ParentId  string      `json:"parentId,omitempty"`
	Content   string      `json:"content"`
	CreatedAt ntime.NTime `json:"createdAt"`
	Votes     int         `json:"votes"`
	Author    Author      `json:"author"`
	Replies   []Comment   `json:"replies"`
}

type NewComment struct {
	StatueId string
	UserId   string
	ParentId string
	Content  string
	Author   Author
}

// CommentUpdate only exposes the content: parents are immutable, which keeps reply trees acyclic.
type CommentUpdate struct {
	Content *string
}

// Tours

type TourAuthor struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
	Verified bool   `json:"verified"`
}

type PremiumTour struct {
	TourId       string     `json:"tourId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	Duration     string     `json:"duration"`
	ThumbnailURL string     `json:"thumbnailUrl"`
	StatueIds    []string   `json:"statueIds"`
	Rating       float64    `json:"rating"`
	ReviewCount  int        `json:"reviewCount"`
	Author       TourAuthor `json:"author"`
}

type NewTour struct {
	Title        string
	Description  string
	Price        float64
	Duration     string
	ThumbnailURL string
	StatueIds    []string
	Rating       float64
	ReviewCount  int
	Author       TourAuthor
}

// Sponsors

type SponsorExhibit struct {
	SponsorId    string      `json:"sponsorId"`
	StatueId     string      `json:"statueId"`
	BrandName    string      `json:"brandName"`
	CampaignURL  string      `json:"campaignUrl"`
	ARContentURL string      `json:"arContentUrl"`
	StartDate    ntime.NTime `json:"startDate"`
	EndDate      ntime.NTime `json:"endDate"`
}

type NewSponsor struct {
	StatueId     string
	BrandName    string
	CampaignURL  string
	ARContentURL string
	StartDate    ntime.NTime
	EndDate      ntime.NTime
}

// ActiveAt reports whether the campaign runs at the given instant; the end date is exclusive.
func (s SponsorExhibit) ActiveAt(t time.Time) bool {
	return !t.Before(s.StartDate.Time()) && t.Before(s.EndDate.Time())
}

// Purchases

type PurchaseStatus string

const Completed PurchaseStatus = "completed"

type Purchase struct {
	PurchaseId string         `json:"purchaseId"`
	TourId     string         `json:"tourId"`
	UserId     string         `json:"userId"`
	Amount     float64        `json:"amount"`
	Status     PurchaseStatus `json:"status"`
	CreatedAt  ntime.NTime    `json:"createdAt"`
}

type NewPurchase struct {
	TourId string
	UserId string
	Amount float64
}

// Page slices a filtered sequence; see paginate for the boundary rules.
type Page struct {
	Limit  int
	Offset int
}
