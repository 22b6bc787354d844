package utils

import (
	"net/http"
	"strconv"
	"time"
)

type QueryOptions struct {
	Page     int
	Limit    int
	Status   string
	Platform string
	From     *time.Time
	To       *time.Time
}

func ParseQueryOptions(r *http.Request) QueryOptions {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	opts := QueryOptions{
		Page:     page,
		Limit:    limit,
		Status:   q.Get("status"),
		Platform: q.Get("platform"),
	}

	if from, err := time.Parse("2006-01-02", q.Get("from")); err == nil {
		opts.From = &from
	}
	if to, err := time.Parse("2006-01-02", q.Get("to")); err == nil {
		// inclusive end of day
		end := to.Add(24*time.Hour - time.Nanosecond)
		opts.To = &end
	}

	return opts
}

func (o QueryOptions) Skip() int64 {
	return int64((o.Page - 1) * o.Limit)
}
