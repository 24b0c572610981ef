package httpx

import (
	"net/url"
	"strings"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	"github.com/dojoworks/dojo-admin/internal/listing"
)

const (
	// StrTrue represents the string "true" for boolean query parameters.
	StrTrue = "true"
	// StrFalse represents the string "false" for boolean query parameters.
	StrFalse = "false"

	// searchParam is the free-text filter shared by every list.
	searchParam = "q"
)

// boolParam reads a tri-state query param: nil means "any".
func boolParam(q url.Values, key string) *bool {
	switch strings.ToLower(strings.TrimSpace(q.Get(key))) {
	case StrTrue:
		v := true
		return &v
	case StrFalse:
		v := false
		return &v
	default:
		return nil
	}
}

func boolPredicate[T any](want *bool, field func(T) bool) listing.Predicate[T] {
	if want == nil {
		return nil
	}
	return func(item T) bool { return field(item) == *want }
}

func upper(q url.Values, key string) string {
	return strings.ToUpper(strings.TrimSpace(q.Get(key)))
}

var (
	studentFilterParams    = []string{searchParam, "status", "faixa"}
	guardianFilterParams   = []string{searchParam}
	groupFilterParams      = []string{searchParam, "modalidade", "ativa"}
	classFilterParams      = []string{searchParam, "status", "categoria"}
	enrollmentFilterParams = []string{searchParam, "status"}
	userFilterParams       = []string{searchParam, "perfil", "ativo"}
)

// studentFilter matches name, email or CPF (with or without punctuation), status and belt.
func studentFilter(q url.Values) listing.Filter[academy.Student] {
	term := q.Get(searchParam)
	return listing.NewFilter(
		listing.Any(
			listing.Text(term,
				func(s academy.Student) string { return s.Name },
				func(s academy.Student) string { return s.Email },
				func(s academy.Student) string { return s.Document },
			),
			listing.Digits(term, func(s academy.Student) string { return s.Document }),
		),
		listing.Equal(academy.StudentStatus(upper(q, "status")), func(s academy.Student) academy.StudentStatus { return s.Status }),
		listing.Equal(academy.Belt(upper(q, "faixa")), func(s academy.Student) academy.Belt { return s.Belt }),
	)
}

func guardianFilter(q url.Values) listing.Filter[academy.Guardian] {
	term := q.Get(searchParam)
	return listing.NewFilter(
		listing.Any(
			listing.Text(term,
				func(g academy.Guardian) string { return g.Name },
				func(g academy.Guardian) string { return g.Email },
				func(g academy.Guardian) string { return g.Document },
			),
			listing.Digits(term, func(g academy.Guardian) string { return g.Document }),
		),
	)
}

func groupFilter(q url.Values) listing.Filter[academy.Group] {
	return listing.NewFilter(
		listing.Text(q.Get(searchParam),
			func(g academy.Group) string { return g.Name },
			func(g academy.Group) string { return g.Instructor },
		),
		listing.Equal(academy.Modality(upper(q, "modalidade")), func(g academy.Group) academy.Modality { return g.Modality }),
		boolPredicate(boolParam(q, "ativa"), func(g academy.Group) bool { return g.Active }),
	)
}

func classFilter(q url.Values) listing.Filter[academy.Class] {
	return listing.NewFilter(
		listing.Text(q.Get(searchParam),
			func(c academy.Class) string { return c.GroupName },
			func(c academy.Class) string { return c.Description },
		),
		listing.Equal(academy.ClassStatus(upper(q, "status")), func(c academy.Class) academy.ClassStatus { return c.Status }),
		listing.Equal(academy.Modality(upper(q, "categoria")), func(c academy.Class) academy.Modality { return c.Modality }),
	)
}

func enrollmentFilter(q url.Values) listing.Filter[academy.Enrollment] {
	return listing.NewFilter(
		listing.Text(q.Get(searchParam),
			func(e academy.Enrollment) string { return e.StudentName },
			func(e academy.Enrollment) string { return e.GroupName },
		),
		listing.Equal(academy.EnrollmentStatus(upper(q, "status")), func(e academy.Enrollment) academy.EnrollmentStatus { return e.Status }),
	)
}

func userFilter(q url.Values) listing.Filter[academy.User] {
	return listing.NewFilter(
		listing.Text(q.Get(searchParam),
			func(u academy.User) string { return u.Name },
			func(u academy.User) string { return u.Email },
		),
		listing.Equal(academy.Profile(upper(q, "perfil")), func(u academy.User) academy.Profile { return u.Profile }),
		boolPredicate(boolParam(q, "ativo"), func(u academy.User) bool { return u.Active }),
	)
}
