package catalog

import (
	"errors"
	"fmt"
)

// Level identifies one of the three dependent selection controls.
type Level int

const (
	LevelCategory Level = iota
	LevelSubCategory
	LevelThird
)

func (l Level) String() string {
	switch l {
	case LevelCategory:
		return "category"
	case LevelSubCategory:
		return "sub_category"
	case LevelThird:
		return "third_category"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

var (
	// ErrNotCandidate means the id is not in the candidate list derived from
	// the level's immediate ancestor.
	ErrNotCandidate = errors.New("selection is not a candidate for this level")
	// ErrAncestorUnset means a lower level was set while its ancestor had no
	// selection.
	ErrAncestorUnset = errors.New("ancestor level has no selection")
)

// Selector keeps three dependent category selections consistent. The only
// consistency mechanism is the clearing rule: changing a level always clears
// every level below it, even when the old descendants would still be valid
// under the new ancestor. There is no separate re-validation pass.
type Selector struct {
	tree *Tree

	category      string
	subCategory   string
	thirdCategory string
}

func NewSelector(tree *Tree) *Selector {
	return &Selector{tree: tree}
}

// Selection returns the current ids, empty string meaning unselected.
func (s *Selector) Selection() (category, subCategory, thirdCategory string) {
	return s.category, s.subCategory, s.thirdCategory
}

// SelectCategory sets the root-level selection and unconditionally clears the
// sub and third levels. An empty id clears all three.
func (s *Selector) SelectCategory(id string) error {
	if id == "" {
		s.category, s.subCategory, s.thirdCategory = "", "", ""
		return nil
	}
	if !contains(s.tree.Roots(), id) {
		return fmt.Errorf("category %q: %w", id, ErrNotCandidate)
	}
	s.category = id
	s.subCategory = ""
	s.thirdCategory = ""
	return nil
}

// SelectSubCategory sets the second level from the current category's
// children and unconditionally clears the third level. An empty id clears
// levels two and three.
func (s *Selector) SelectSubCategory(id string) error {
	if id == "" {
		s.subCategory, s.thirdCategory = "", ""
		return nil
	}
	if s.category == "" {
		return fmt.Errorf("sub_category %q: %w", id, ErrAncestorUnset)
	}
	if !contains(s.tree.ChildrenOf(s.category), id) {
		return fmt.Errorf("sub_category %q: %w", id, ErrNotCandidate)
	}
	s.subCategory = id
	s.thirdCategory = ""
	return nil
}

// SelectThirdCategory sets the leaf level. No downstream effect.
func (s *Selector) SelectThirdCategory(id string) error {
	if id == "" {
		s.thirdCategory = ""
		return nil
	}
	if s.subCategory == "" {
		return fmt.Errorf("third_category %q: %w", id, ErrAncestorUnset)
	}
	if !contains(s.tree.ChildrenOf(s.subCategory), id) {
		return fmt.Errorf("third_category %q: %w", id, ErrNotCandidate)
	}
	s.thirdCategory = id
	return nil
}

// Candidates returns the choice list for a level: roots for the category
// level, otherwise the children of the level's immediate ancestor (empty when
// the ancestor is unselected or childless).
func (s *Selector) Candidates(level Level) []*Node {
	switch level {
	case LevelCategory:
		return s.tree.Roots()
	case LevelSubCategory:
		if s.category == "" {
			return []*Node{}
		}
		return s.tree.ChildrenOf(s.category)
	case LevelThird:
		if s.subCategory == "" {
			return []*Node{}
		}
		return s.tree.ChildrenOf(s.subCategory)
	}
	return []*Node{}
}

// Enabled reports whether a level's control is interactive: its immediate
// ancestor must be selected and must have candidates for this level.
func (s *Selector) Enabled(level Level) bool {
	switch level {
	case LevelCategory:
		return true
	case LevelSubCategory:
		return s.category != "" && len(s.tree.ChildrenOf(s.category)) > 0
	case LevelThird:
		return s.subCategory != "" && len(s.tree.ChildrenOf(s.subCategory)) > 0
	}
	return false
}

func contains(nodes []*Node, id string) bool {
	for _, n := range nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}
