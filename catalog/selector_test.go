package catalog

import (
	"errors"
	"testing"
)

func newSampleSelector() *Selector {
	return NewSelector(NewTree(sampleHierarchy()))
}

func TestSelectCategoryClearsDescendants(t *testing.T) {
	s := newSampleSelector()

	if err := s.SelectCategory("A"); err != nil {
		t.Fatalf("SelectCategory(A): %v", err)
	}
	if err := s.SelectSubCategory("A1"); err != nil {
		t.Fatalf("SelectSubCategory(A1): %v", err)
	}
	if err := s.SelectThirdCategory("A1a"); err != nil {
		t.Fatalf("SelectThirdCategory(A1a): %v", err)
	}

	// Changing the root always clears both lower levels, even though A1
	// would remain valid under a re-selection of A.
	if err := s.SelectCategory("B"); err != nil {
		t.Fatalf("SelectCategory(B): %v", err)
	}
	cat, sub, third := s.Selection()
	if cat != "B" || sub != "" || third != "" {
		t.Errorf("Selection() = (%q, %q, %q), want (B, , )", cat, sub, third)
	}
}

func TestReselectingSameCategoryStillClears(t *testing.T) {
	s := newSampleSelector()
	s.SelectCategory("A")
	s.SelectSubCategory("A1")
	s.SelectThirdCategory("A1a")

	if err := s.SelectCategory("A"); err != nil {
		t.Fatalf("SelectCategory(A) again: %v", err)
	}
	_, sub, third := s.Selection()
	if sub != "" || third != "" {
		t.Errorf("descendants = (%q, %q), want cleared", sub, third)
	}
}

func TestSelectSubCategoryClearsThird(t *testing.T) {
	s := newSampleSelector()
	s.SelectCategory("A")
	s.SelectSubCategory("A1")
	s.SelectThirdCategory("A1a")

	if err := s.SelectSubCategory("A2"); err != nil {
		t.Fatalf("SelectSubCategory(A2): %v", err)
	}
	_, sub, third := s.Selection()
	if sub != "A2" || third != "" {
		t.Errorf("selection = (%q, %q), want (A2, )", sub, third)
	}
}

func TestEmptySelectionClears(t *testing.T) {
	s := newSampleSelector()
	s.SelectCategory("A")
	s.SelectSubCategory("A1")
	s.SelectThirdCategory("A1a")

	if err := s.SelectCategory(""); err != nil {
		t.Fatalf("SelectCategory(\"\"): %v", err)
	}
	cat, sub, third := s.Selection()
	if cat != "" || sub != "" || third != "" {
		t.Errorf("Selection() = (%q, %q, %q), want all empty", cat, sub, third)
	}
}

func TestSelectRejectsNonCandidates(t *testing.T) {
	s := newSampleSelector()

	if err := s.SelectCategory("A1"); !errors.Is(err, ErrNotCandidate) {
		t.Errorf("SelectCategory(A1) err = %v, want ErrNotCandidate", err)
	}

	s.SelectCategory("A")
	// A sub of a different root is not a candidate here.
	if err := s.SelectSubCategory("B"); !errors.Is(err, ErrNotCandidate) {
		t.Errorf("SelectSubCategory(B) err = %v, want ErrNotCandidate", err)
	}
	s.SelectSubCategory("A1")
	if err := s.SelectThirdCategory("A2"); !errors.Is(err, ErrNotCandidate) {
		t.Errorf("SelectThirdCategory(A2) err = %v, want ErrNotCandidate", err)
	}
}

func TestSelectRequiresAncestor(t *testing.T) {
	s := newSampleSelector()

	if err := s.SelectSubCategory("A1"); !errors.Is(err, ErrAncestorUnset) {
		t.Errorf("SelectSubCategory without category err = %v, want ErrAncestorUnset", err)
	}
	s.SelectCategory("A")
	if err := s.SelectThirdCategory("A1a"); !errors.Is(err, ErrAncestorUnset) {
		t.Errorf("SelectThirdCategory without sub err = %v, want ErrAncestorUnset", err)
	}
}

func TestCandidatesFollowAncestor(t *testing.T) {
	s := newSampleSelector()

	if got := ids(s.Candidates(LevelCategory)); !equalIDs(got, "A", "B") {
		t.Errorf("Candidates(category) = %v, want [A B]", got)
	}
	if got := s.Candidates(LevelSubCategory); len(got) != 0 {
		t.Errorf("Candidates(sub) before selection = %v, want empty", ids(got))
	}

	s.SelectCategory("A")
	if got := ids(s.Candidates(LevelSubCategory)); !equalIDs(got, "A1", "A2") {
		t.Errorf("Candidates(sub) = %v, want [A1 A2]", got)
	}
	s.SelectSubCategory("A1")
	if got := ids(s.Candidates(LevelThird)); !equalIDs(got, "A1a") {
		t.Errorf("Candidates(third) = %v, want [A1a]", got)
	}
}

func TestEnabledNeedsSelectedAncestorWithChildren(t *testing.T) {
	s := newSampleSelector()

	if !s.Enabled(LevelCategory) {
		t.Error("category level should always be enabled")
	}
	if s.Enabled(LevelSubCategory) {
		t.Error("sub level enabled before a category is selected")
	}

	// B has no children, so the sub control stays disabled.
	s.SelectCategory("B")
	if s.Enabled(LevelSubCategory) {
		t.Error("sub level enabled for a childless category")
	}

	s.SelectCategory("A")
	if !s.Enabled(LevelSubCategory) {
		t.Error("sub level disabled despite candidates")
	}
	if s.Enabled(LevelThird) {
		t.Error("third level enabled before a sub is selected")
	}

	// A2 is a leaf; the third control stays disabled.
	s.SelectSubCategory("A2")
	if s.Enabled(LevelThird) {
		t.Error("third level enabled for a leaf sub")
	}
	s.SelectSubCategory("A1")
	if !s.Enabled(LevelThird) {
		t.Error("third level disabled despite candidates")
	}
}
