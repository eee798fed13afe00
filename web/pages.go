package web

import (
	"net/http"

	"github.com/Care4Youth/care4youth"
)

type pageParams struct {
	Title       string
	Description string
}

func (rt *Web) index() http.HandlerFunc {
	templ := rt.parse(nil, "index.html")
	type params struct {
		pageParams
		Stats    []Stat
		Programs []Program
	}
	return func(w http.ResponseWriter, r *http.Request) {
		rt.runTempl(w, r, templ, &params{
			pageParams: pageParams{
				Title:       "Care4Youth | Bringing Hope to Children in Need",
				Description: "Every child deserves a chance to smile, laugh, and dream.",
			},
			Stats:    siteStats,
			Programs: sitePrograms[:3],
		})
	}
}

func (rt *Web) about() http.HandlerFunc {
	templ := rt.parse(nil, "about.html")
	type params struct {
		pageParams
		Stats []Stat
	}
	return func(w http.ResponseWriter, r *http.Request) {
		rt.runTempl(w, r, templ, &params{
			pageParams: pageParams{
				Title:       "About | Care4Youth",
				Description: "25 years of bringing hope to children and families.",
			},
			Stats: siteStats,
		})
	}
}

func (rt *Web) programs() http.HandlerFunc {
	templ := rt.parse(nil, "programs.html")
	type params struct {
		pageParams
		Programs []Program
	}
	return func(w http.ResponseWriter, r *http.Request) {
		rt.runTempl(w, r, templ, &params{
			pageParams: pageParams{
				Title:       "Programs | Care4Youth",
				Description: "Programs supporting children and families, from wish fulfillment to emergency response.",
			},
			Programs: sitePrograms,
		})
	}
}

func (rt *Web) volunteer() http.HandlerFunc {
	templ := rt.parse(nil, "volunteer.html")
	type params struct {
		pageParams
		Roles []VolunteerRole
	}
	return func(w http.ResponseWriter, r *http.Request) {
		rt.runTempl(w, r, templ, &params{
			pageParams: pageParams{
				Title:       "Volunteer | Care4Youth",
				Description: "Volunteer with Care4Youth and make a difference in the lives of children and families.",
			},
			Roles: volunteerRoles,
		})
	}
}

func (rt *Web) donate() http.HandlerFunc {
	templ := rt.parse(nil, "donate.html")
	type params struct {
		pageParams
		Tiers   []care4youth.DonationTier
		Stories []ImpactStory
	}
	return func(w http.ResponseWriter, r *http.Request) {
		rt.runTempl(w, r, templ, &params{
			pageParams: pageParams{
				Title:       "Donate | Care4Youth",
				Description: "Your gift brings hope to children in need.",
			},
			Tiers:   care4youth.DonationTiers,
			Stories: impactStories,
		})
	}
}
