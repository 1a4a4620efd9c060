/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Reefdesk Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package demo ships the sample back-office datasets of a dive-center
// marketplace: bookings, centers, coupons and staff members.
package demo

import (
	"fmt"

	"github.com/google/safehtml"

	"github.com/reefdesk/tabular/core/tabular"
	"github.com/reefdesk/tabular/core/views"
	"github.com/reefdesk/tabular/datasources"
)

// RegisterAll adds every demo dataset to the registry.
func RegisterAll(reg *datasources.Registry) error {
	for _, d := range []*datasources.Dataset{
		Bookings(),
		Centers(),
		Coupons(),
		Members(),
	} {
		if err := reg.Register(d); err != nil {
			return err
		}
	}
	return nil
}

func statusColumn(key string) tabular.Column[datasources.Record] {
	col := tabular.NewColumn(key, "Status", datasources.Field(key))
	col.StyleHint = "badge"
	return col
}

func priceColumn(key, label string) tabular.Column[datasources.Record] {
	col := tabular.NewColumn(key, label, datasources.Field(key))
	col.Align = tabular.AlignRight
	return col
}

// Bookings is the booking ledger: who booked which trip at which center,
// for how much, and where the booking stands.
func Bookings() *datasources.Dataset {
	d := &datasources.Dataset{
		Name:        "bookings",
		Title:       "Bookings",
		Description: "All bookings across the platform",
		Columns: []tabular.Column[datasources.Record]{
			tabular.NewColumn("reference", "Reference", datasources.Field("reference")),
			tabular.NewColumn("diver", "Diver", datasources.Field("diver")),
			tabular.NewColumn("center", "Center", datasources.Field("center")),
			tabular.NewColumn("trip_date", "Trip Date", datasources.Field("trip_date")),
			priceColumn("amount", "Amount (EUR)"),
			statusColumn("status"),
		},
		SearchFields: []tabular.SearchField[datasources.Record]{
			datasources.SearchOn("reference"),
			datasources.SearchOn("diver"),
			datasources.SearchOn("center"),
		},
		Filters: []tabular.Filter{
			{Key: "status", Label: "Status", Options: []tabular.FilterOption{
				{Value: "pending", Label: "Pending"},
				{Value: "confirmed", Label: "Confirmed"},
				{Value: "completed", Label: "Completed"},
				{Value: "cancelled", Label: "Cancelled"},
			}},
		},
		Defaults: tabular.Defaults{
			SortKey: "trip_date",
			SortDir: tabular.Descending,
		}.WithFallbacks(),
		KeyColumn: "reference",
		Detail: func(r datasources.Record) []views.DetailField {
			return []views.DetailField{
				{Label: "Reference", Value: r.Get("reference").String()},
				{Label: "Diver email", Value: r.Get("diver_email").String()},
				{Label: "Participants", Value: r.Get("participants").String()},
				{Label: "Client note", Value: r.Get("client_note").String()},
				{Label: "Booked on", Value: r.Get("created_at").String()},
			}
		},
	}

	type b struct {
		ref, diver, email, center, date string
		amount                          float64
		participants                    int
		status, note, created           string
	}
	for _, row := range []b{
		{"BK-1041", "Laura Jensen", "laura.jensen@example.com", "Blue Lagoon Divers", "2026-09-14", 178, 2, "confirmed", "Two certified divers, own gear", "2026-08-02"},
		{"BK-1042", "Marco Silva", "marco.silva@example.com", "Coral Bay Diving", "2026-09-02", 89, 1, "pending", "", "2026-08-05"},
		{"BK-1043", "Aiko Tanaka", "aiko.t@example.com", "Blue Lagoon Divers", "2026-08-21", 267, 3, "completed", "One beginner in the group", "2026-07-18"},
		{"BK-1044", "Tom Becker", "t.becker@example.com", "Wreck Point Expeditions", "2026-09-30", 145, 1, "confirmed", "Nitrox requested", "2026-08-11"},
		{"BK-1045", "Sofia Rossi", "sofia.rossi@example.com", "Coral Bay Diving", "2026-08-12", 89, 1, "cancelled", "", "2026-07-29"},
		{"BK-1046", "Liam O'Connor", "liam.oc@example.com", "Manta Ray Adventures", "2026-10-03", 420, 4, "pending", "Family trip, two snorkelers", "2026-08-20"},
		{"BK-1047", "Emma Dubois", "emma.dubois@example.com", "Blue Lagoon Divers", "2026-09-14", 89, 1, "confirmed", "", "2026-08-13"},
		{"BK-1048", "Nils Andersen", "nils.a@example.com", "Wreck Point Expeditions", "2026-08-28", 290, 2, "completed", "Deep wreck specialty", "2026-07-10"},
		{"BK-1049", "Carmen Ortega", "c.ortega@example.com", "Manta Ray Adventures", "2026-09-19", 105, 1, "pending", "", "2026-08-22"},
		{"BK-1050", "David Kim", "d.kim@example.com", "Coral Bay Diving", "2026-09-07", 178, 2, "confirmed", "Night dive if available", "2026-08-15"},
		{"BK-1051", "Anna Kowalska", "anna.k@example.com", "Blue Lagoon Divers", "2026-08-30", 89, 1, "cancelled", "Rebooked to later date", "2026-08-01"},
		{"BK-1052", "Pierre Martin", "p.martin@example.com", "Manta Ray Adventures", "2026-10-11", 210, 2, "pending", "", "2026-08-25"},
	} {
		d.Rows = append(d.Rows, datasources.Record{
			"reference":    tabular.String(row.ref),
			"diver":        tabular.String(row.diver),
			"diver_email":  tabular.String(row.email),
			"center":       tabular.String(row.center),
			"trip_date":    tabular.String(row.date),
			"amount":       tabular.Number(row.amount),
			"participants": tabular.Int(row.participants),
			"status":       tabular.String(row.status),
			"client_note":  tabular.String(row.note),
			"created_at":   tabular.String(row.created),
		})
	}
	return d
}

// Centers lists the dive centers on the platform with their onboarding
// status.
func Centers() *datasources.Dataset {
	d := &datasources.Dataset{
		Name:        "centers",
		Title:       "Dive Centers",
		Description: "Partner dive centers and their onboarding status",
		Columns: []tabular.Column[datasources.Record]{
			tabular.NewColumn("name", "Name", datasources.Field("name")),
			tabular.NewColumn("city", "City", datasources.Field("city")),
			tabular.NewColumn("country", "Country", datasources.Field("country")),
			priceColumn("price_from", "From (EUR)"),
			func() tabular.Column[datasources.Record] {
				col := tabular.NewColumn("eco", "Eco", datasources.Field("eco"))
				col.Align = tabular.AlignCenter
				col.Render = func(r datasources.Record) safehtml.HTML {
					if r.Get("eco").String() == "true" {
						return safehtml.HTMLEscaped("✓")
					}
					return safehtml.HTMLEscaped("–")
				}
				return col
			}(),
			statusColumn("status"),
		},
		SearchFields: []tabular.SearchField[datasources.Record]{
			datasources.SearchOn("name"),
			datasources.SearchOn("city"),
			datasources.SearchOn("country"),
		},
		Filters: []tabular.Filter{
			{Key: "status", Label: "Status", Options: []tabular.FilterOption{
				{Value: "active", Label: "Active"},
				{Value: "pending", Label: "Pending"},
				{Value: "suspended", Label: "Suspended"},
			}},
			{Key: "country", Label: "Country", Options: []tabular.FilterOption{
				{Value: "Egypt", Label: "Egypt"},
				{Value: "Indonesia", Label: "Indonesia"},
				{Value: "Mexico", Label: "Mexico"},
				{Value: "Spain", Label: "Spain"},
			}},
		},
		Defaults: tabular.Defaults{
			SortKey: "name",
			SortDir: tabular.Ascending,
		}.WithFallbacks(),
		KeyColumn: "slug",
		Detail: func(r datasources.Record) []views.DetailField {
			return []views.DetailField{
				{Label: "Contact", Value: r.Get("email").String()},
				{Label: "Phone", Value: r.Get("phone").String()},
				{Label: "Address", Value: r.Get("address").String()},
				{Label: "Dive types", Value: r.Get("dive_types").String()},
			}
		},
	}

	type c struct {
		name, slug, city, country string
		priceFrom                 float64
		eco                       bool
		status                    string
		email, phone, address     string
		diveTypes                 string
	}
	for _, row := range []c{
		{"Blue Lagoon Divers", "blue-lagoon-divers", "Hurghada", "Egypt", 45, true, "active", "hello@bluelagoon.example", "+20 100 555 0101", "Marina Blvd 3, Hurghada", "reef, wreck, night"},
		{"Coral Bay Diving", "coral-bay-diving", "Playa del Carmen", "Mexico", 62, false, "active", "info@coralbay.example", "+52 984 555 0144", "Av. Quinta 88", "reef, cenote"},
		{"Wreck Point Expeditions", "wreck-point", "Bali", "Indonesia", 75, true, "active", "dive@wreckpoint.example", "+62 361 555 0188", "Jl. Pantai 12, Tulamben", "wreck, deep, tech"},
		{"Manta Ray Adventures", "manta-ray-adventures", "Nusa Penida", "Indonesia", 58, true, "pending", "book@mantaray.example", "+62 366 555 0123", "Ped Beach Rd 5", "reef, drift"},
		{"Costa Azul Sub", "costa-azul-sub", "Barcelona", "Spain", 40, false, "active", "hola@costaazul.example", "+34 93 555 0170", "Port Olimpic 21", "reef, night"},
		{"Red Sea Explorers", "red-sea-explorers", "Dahab", "Egypt", 50, false, "suspended", "team@rsexplorers.example", "+20 69 555 0155", "Lighthouse Rd 7", "reef, deep"},
	} {
		d.Rows = append(d.Rows, datasources.Record{
			"name":       tabular.String(row.name),
			"slug":       tabular.String(row.slug),
			"city":       tabular.String(row.city),
			"country":    tabular.String(row.country),
			"price_from": tabular.Number(row.priceFrom),
			"eco":        tabular.Bool(row.eco),
			"status":     tabular.String(row.status),
			"email":      tabular.String(row.email),
			"phone":      tabular.String(row.phone),
			"address":    tabular.String(row.address),
			"dive_types": tabular.String(row.diveTypes),
		})
	}
	return d
}

// Coupons lists discount codes, including expired ones.
func Coupons() *datasources.Dataset {
	d := &datasources.Dataset{
		Name:        "coupons",
		Title:       "Coupons",
		Description: "Discount codes and their redemption state",
		Columns: []tabular.Column[datasources.Record]{
			tabular.NewColumn("code", "Code", datasources.Field("code")),
			tabular.NewColumn("discount", "Discount", func(r datasources.Record) tabular.Value {
				value := r.Get("discount_value")
				if value.IsNull() {
					return tabular.Null()
				}
				if r.Get("discount_type").String() == "percent" {
					return tabular.String(value.String() + " %")
				}
				return tabular.String(value.String() + " EUR")
			}),
			tabular.NewColumn("discount_type", "Type", datasources.Field("discount_type")),
			tabular.NewColumn("center", "Center", datasources.Field("center")),
			priceColumn("redemptions", "Used"),
			tabular.NewColumn("expires", "Expires", datasources.Field("expires")),
			statusColumn("status"),
		},
		SearchFields: []tabular.SearchField[datasources.Record]{
			datasources.SearchOn("code"),
			datasources.SearchOn("center"),
		},
		Filters: []tabular.Filter{
			{Key: "status", Label: "Status", Options: []tabular.FilterOption{
				{Value: "active", Label: "Active"},
				{Value: "expired", Label: "Expired"},
			}},
			{Key: "discount_type", Label: "Type", Options: []tabular.FilterOption{
				{Value: "percent", Label: "Percent"},
				{Value: "fixed", Label: "Fixed amount"},
			}},
		},
		Defaults: tabular.Defaults{
			SortKey: "expires",
			SortDir: tabular.Ascending,
		}.WithFallbacks(),
		KeyColumn: "code",
		Detail: func(r datasources.Record) []views.DetailField {
			return []views.DetailField{
				{Label: "Created", Value: r.Get("created_at").String()},
				{Label: "Max redemptions", Value: r.Get("max_redemptions").String()},
			}
		},
	}

	type cp struct {
		code, dtype    string
		value          float64
		center         string
		redemptions    int
		maxRedemptions int
		expires        string
		status         string
		created        string
	}
	for _, row := range []cp{
		{"SUMMER26", "percent", 15, "", 48, 100, "2026-09-30", "active", "2026-06-01"},
		{"WELCOME10", "fixed", 10, "", 210, 0, "2026-12-31", "active", "2026-01-15"},
		{"LAGOON20", "percent", 20, "Blue Lagoon Divers", 12, 50, "2026-08-15", "expired", "2026-05-20"},
		{"WRECKDEAL", "fixed", 25, "Wreck Point Expeditions", 7, 30, "2026-11-01", "active", "2026-07-04"},
		{"SPRING25", "percent", 25, "", 96, 100, "2026-05-31", "expired", "2026-03-01"},
		{"MANTA5", "fixed", 5, "Manta Ray Adventures", 0, 0, "2027-01-31", "active", "2026-08-10"},
	} {
		rec := datasources.Record{
			"code":           tabular.String(row.code),
			"discount_type":  tabular.String(row.dtype),
			"discount_value": tabular.Number(row.value),
			"redemptions":    tabular.Int(row.redemptions),
			"expires":        tabular.String(row.expires),
			"status":         tabular.String(row.status),
			"created_at":     tabular.String(row.created),
		}
		if row.center != "" {
			rec["center"] = tabular.String(row.center)
		}
		if row.maxRedemptions > 0 {
			rec["max_redemptions"] = tabular.Int(row.maxRedemptions)
		}
		d.Rows = append(d.Rows, rec)
	}
	return d
}

// Members lists center staff with their roles.
func Members() *datasources.Dataset {
	d := &datasources.Dataset{
		Name:        "members",
		Title:       "Staff Members",
		Description: "Center staff and their roles",
		Columns: []tabular.Column[datasources.Record]{
			tabular.NewColumn("name", "Name", datasources.Field("name")),
			tabular.NewColumn("email", "Email", datasources.Field("email")),
			tabular.NewColumn("center", "Center", datasources.Field("center")),
			tabular.NewColumn("role", "Role", datasources.Field("role")),
			priceColumn("dives_led", "Dives Led"),
			tabular.NewColumn("joined", "Joined", datasources.Field("joined")),
		},
		SearchFields: []tabular.SearchField[datasources.Record]{
			datasources.SearchOn("name"),
			datasources.SearchOn("email"),
		},
		Filters: []tabular.Filter{
			{Key: "role", Label: "Role", Options: []tabular.FilterOption{
				{Value: "owner", Label: "Owner"},
				{Value: "instructor", Label: "Instructor"},
				{Value: "divemaster", Label: "Divemaster"},
				{Value: "staff", Label: "Staff"},
			}},
		},
		Defaults: tabular.Defaults{
			SortKey: "joined",
			SortDir: tabular.Descending,
		}.WithFallbacks(),
	}

	type m struct {
		name, email, center, role string
		divesLed                  int
		joined                    string
	}
	for i, row := range []m{
		{"Karim Mansour", "karim@bluelagoon.example", "Blue Lagoon Divers", "owner", 1430, "2024-02-11"},
		{"Julia Weber", "julia@bluelagoon.example", "Blue Lagoon Divers", "instructor", 612, "2024-06-03"},
		{"Miguel Torres", "miguel@coralbay.example", "Coral Bay Diving", "owner", 980, "2024-03-27"},
		{"Sari Dewi", "sari@wreckpoint.example", "Wreck Point Expeditions", "divemaster", 355, "2025-01-19"},
		{"Oliver Grant", "oliver@wreckpoint.example", "Wreck Point Expeditions", "instructor", 540, "2025-04-08"},
		{"Putu Arta", "putu@mantaray.example", "Manta Ray Adventures", "owner", 760, "2025-06-30"},
		{"Lucia Ferrer", "lucia@costaazul.example", "Costa Azul Sub", "staff", 0, "2026-02-14"},
		{"Hassan Farid", "hassan@rsexplorers.example", "Red Sea Explorers", "divemaster", 289, "2025-09-22"},
	} {
		d.Rows = append(d.Rows, datasources.Record{
			"id":        tabular.String(fmt.Sprintf("m-%03d", i+1)),
			"name":      tabular.String(row.name),
			"email":     tabular.String(row.email),
			"center":    tabular.String(row.center),
			"role":      tabular.String(row.role),
			"dives_led": tabular.Int(row.divesLed),
			"joined":    tabular.String(row.joined),
		})
	}
	return d
}
