package service

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dojoworks/dojo-admin/internal/core"
	"github.com/dojoworks/dojo-admin/internal/domain/academy"
)

// DefaultOptionListSize bounds dropdown option lists.
const DefaultOptionListSize = 100

// Option is one entry of a form dropdown.
type Option struct {
	ID    int64
	Label string
}

// OptionKind selects which dropdown lists to load.
type OptionKind uint8

const (
	OptStudents OptionKind = 1 << iota
	OptGroups
	OptGuardians
	OptClasses
)

// OptionLists holds the loaded dropdown lists.
type OptionLists struct {
	Students  []Option
	Groups    []Option
	Guardians []Option
	Classes   []Option
}

// OptionServiceOptions groups dependencies for OptionService.
type OptionServiceOptions struct {
	Repos OptionRepos
	// Size is the single page size fetched per list; defaults to DefaultOptionListSize.
	Size int
}

// OptionRepos are the repositories option lists read from.
type OptionRepos struct {
	Students  core.StudentRepository
	Groups    core.GroupRepository
	Guardians core.GuardianRepository
	Classes   core.ClassRepository
}

// OptionService loads bounded dropdown lists for forms.
type OptionService struct {
	repos OptionRepos
	size  int
}

// NewOptionService constructs a new OptionService.
func NewOptionService(opts OptionServiceOptions) *OptionService {
	size := opts.Size
	if size <= 0 {
		size = DefaultOptionListSize
	}
	return &OptionService{repos: opts.Repos, size: academy.FirstPage(size).Size}
}

// Load fetches the requested lists concurrently, one page each. Any failure fails the whole load.
func (s *OptionService) Load(ctx context.Context, kinds OptionKind) (*OptionLists, error) {
	out := &OptionLists{}
	req := academy.FirstPage(s.size)
	g, gctx := errgroup.WithContext(ctx)

	if kinds&OptStudents != 0 && s.repos.Students != nil {
		g.Go(func() error {
			page, err := s.repos.Students.List(gctx, req)
			if err != nil {
				return err
			}
			out.Students = toOptions(page.Content, func(st academy.Student) Option {
				return Option{ID: st.ID, Label: st.Name}
			})
			return nil
		})
	}
	if kinds&OptGroups != 0 && s.repos.Groups != nil {
		g.Go(func() error {
			page, err := s.repos.Groups.List(gctx, req)
			if err != nil {
				return err
			}
			out.Groups = toOptions(page.Content, func(gr academy.Group) Option {
				return Option{ID: gr.ID, Label: gr.Name + " (" + gr.Modality.Label() + ")"}
			})
			return nil
		})
	}
	if kinds&OptGuardians != 0 && s.repos.Guardians != nil {
		g.Go(func() error {
			page, err := s.repos.Guardians.List(gctx, req)
			if err != nil {
				return err
			}
			out.Guardians = toOptions(page.Content, func(gd academy.Guardian) Option {
				return Option{ID: gd.ID, Label: gd.Name}
			})
			return nil
		})
	}
	if kinds&OptClasses != 0 && s.repos.Classes != nil {
		g.Go(func() error {
			page, err := s.repos.Classes.List(gctx, req)
			if err != nil {
				return err
			}
			out.Classes = toOptions(page.Content, func(c academy.Class) Option {
				return Option{ID: c.ID, Label: c.GroupName + " " + c.Date.Display() + " " + c.StartTime}
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func toOptions[T any](items []T, conv func(T) Option) []Option {
	out := make([]Option, 0, len(items))
	for _, it := range items {
		out = append(out, conv(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Label) < strings.ToLower(out[j].Label)
	})
	return out
}
