package ingest

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"

	"campaign_pulse/internal/domain"
	"campaign_pulse/internal/source/apify"
)

var mediaTypes = map[string]domain.MediaType{
	"Image":    domain.MediaImage,
	"image":    domain.MediaImage,
	"Video":    domain.MediaVideo,
	"video":    domain.MediaVideo,
	"Carousel": domain.MediaCarousel,
	"carousel": domain.MediaCarousel,
	"Sidecar":  domain.MediaCarousel,
	"sidecar":  domain.MediaCarousel,
}

// MapPost converts one provider record into a post. Records without an
// external id are rejected with ErrMalformedRecord.
func MapPost(rec apify.PostRecord, candidateID, runID uuid.UUID) (domain.Post, error) {
	if rec.ID == "" {
		return domain.Post{}, fmt.Errorf("%w: post without id", domain.ErrMalformedRecord)
	}

	url := rec.URL
	if url == "" {
		url = rec.PostURL
	}
	if url == "" {
		return domain.Post{}, fmt.Errorf("%w: post %s without url", domain.ErrMalformedRecord, rec.ID)
	}

	media, ok := mediaTypes[rec.Type]
	if !ok {
		media = domain.MediaUnknown
	}

	post := domain.Post{
		ID:             uuid.New(),
		CandidateID:    candidateID,
		ScrapingRunID:  runID,
		ExternalID:     rec.ID,
		URL:            url,
		LikeCount:      rec.LikesCount,
		CommentCount:   rec.CommentsCount,
		MediaType:      media,
		IsSponsored:    rec.IsSponsored,
		VideoViewCount: rec.VideoViewCount,
		PostedAt:       rec.Timestamp.Ptr(),
		ScrapedAt:      time.Now().UTC(),
		RawData:        types.JSONText(rec.Raw),
	}
	if rec.ShortCode != "" {
		post.Shortcode = &rec.ShortCode
	}
	if rec.Caption != "" {
		post.Caption = &rec.Caption
	}

	return post, nil
}

// MapComment converts one provider record into a comment. Records without an
// external id are rejected with ErrMalformedRecord. An empty text is kept.
func MapComment(rec apify.CommentRecord, postID, runID uuid.UUID) (domain.Comment, error) {
	if rec.ID == "" {
		return domain.Comment{}, fmt.Errorf("%w: comment without id", domain.ErrMalformedRecord)
	}

	comment := domain.Comment{
		ID:            uuid.New(),
		PostID:        postID,
		ScrapingRunID: runID,
		ExternalID:    rec.ID,
		Text:          rec.Text,
		LikeCount:     rec.LikesCount,
		ReplyCount:    int(rec.Replies),
		CommentedAt:   rec.Timestamp.Ptr(),
		ScrapedAt:     time.Now().UTC(),
		RawData:       types.JSONText(rec.Raw),
	}
	if rec.OwnerUsername != "" {
		comment.AuthorUsername = &rec.OwnerUsername
	}

	return comment, nil
}
