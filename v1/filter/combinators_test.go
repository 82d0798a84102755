package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaves() (a, b, c *MatchCondition) {
	return MatchKeyword("a", "1"), MatchKeyword("b", "2"), MatchKeyword("c", "3")
}

func TestAnd_FlattensAssociatively(t *testing.T) {
	a, b, c := leaves()

	left := And(And(a, b), c)
	right := And(a, And(b, c))

	assert.Equal(t, []Condition{a, b, c}, left.Conditions())
	assert.Equal(t, []Condition{a, b, c}, right.Conditions())
}

func TestOr_FlattensAssociatively(t *testing.T) {
	a, b, c := leaves()

	left := Or(Or(a, b), c)
	right := Or(a, Or(b, c))

	assert.Equal(t, []Condition{a, b, c}, left.Conditions())
	assert.Equal(t, []Condition{a, b, c}, right.Conditions())
}

func TestAnd_KeepsOtherGroupKinds(t *testing.T) {
	a, b, c := leaves()

	should := Or(b, c)
	got := And(a, should)

	require.Len(t, got.Conditions(), 2)
	assert.Same(t, a, got.Conditions()[0])
	assert.Same(t, should, got.Conditions()[1])
}

func TestAnd_UnwrapsGroupOneLevel(t *testing.T) {
	a, b, c := leaves()
	d := MatchKeyword("d", "4")

	// Group[Must[a, b], Should[c]] and d
	group := Combine(And(a, b), Or(c, c))
	got := And(group, d)

	conds := got.Conditions()
	require.Len(t, conds, 4)
	assert.Same(t, a, conds[0])
	assert.Same(t, b, conds[1])
	assert.Equal(t, KindShould, conds[2].Kind())
	assert.Same(t, d, conds[3])
}

func TestCombine_ProducesFlatGroup(t *testing.T) {
	a, b, c := leaves()

	got := Combine(Combine(a, b), Combine(c, a))

	conds := got.Conditions()
	assert.Equal(t, []Condition{a, b, c, a}, conds)
	for _, cond := range conds {
		assert.NotEqual(t, KindGroup, cond.Kind())
	}
}

func TestGroupConstructor_SplicesGroups(t *testing.T) {
	a, b, c := leaves()

	got := Group(a, Group(b, c))

	assert.Equal(t, []Condition{a, b, c}, got.Conditions())
}

func TestMust_SkipsNilConditions(t *testing.T) {
	a, b, _ := leaves()

	got := Must(a, nil, b)

	assert.Equal(t, []Condition{a, b}, got.Conditions())
}

func TestMust_AllNilConditions(t *testing.T) {
	assert.Empty(t, Must(nil, nil).Conditions())
	assert.Empty(t, Should((*MatchCondition)(nil)).Conditions())
	assert.Empty(t, Group(nil, (*MustCondition)(nil)).Conditions())
}

func TestNewMust_RejectsOnlyNilConditions(t *testing.T) {
	_, err := NewMust([]Condition{nil})
	assert.ErrorIs(t, err, ErrNullArgument)

	_, err = NewMustNot([]Condition{nil, (*MatchCondition)(nil)})
	assert.ErrorIs(t, err, ErrNullArgument)

	_, err = NewShould([]Condition{Group(nil)})
	assert.ErrorIs(t, err, ErrNullArgument)

	a, _, _ := leaves()
	m, err := NewMust([]Condition{nil, a})
	require.NoError(t, err)
	assert.Equal(t, []Condition{a}, m.Conditions())
}

func TestNot_Nil(t *testing.T) {
	got := Not(nil)
	require.IsType(t, &MustNotCondition{}, got)
	assert.Empty(t, got.(*MustNotCondition).Conditions())

	got = Not((*MustCondition)(nil))
	require.IsType(t, &MustNotCondition{}, got)
	assert.Empty(t, got.(*MustNotCondition).Conditions())
}

func TestNewMust_RequiresConditions(t *testing.T) {
	_, err := NewMust(nil)
	assert.ErrorIs(t, err, ErrNullArgument)

	_, err = NewMustNot([]Condition{})
	assert.ErrorIs(t, err, ErrNullArgument)

	_, err = NewShould(nil)
	assert.ErrorIs(t, err, ErrNullArgument)

	a, b, _ := leaves()
	m, err := NewMust([]Condition{a, Must(b)})
	require.NoError(t, err)
	assert.Equal(t, []Condition{a, b}, m.Conditions())
}

func TestMustNot_SplicesMustNot(t *testing.T) {
	a, b, c := leaves()

	got := MustNot(MustNot(a, b), c)

	assert.Equal(t, []Condition{a, b, c}, got.Conditions())
}

func TestNot_DoubleNegationOfLeaf(t *testing.T) {
	a, _, _ := leaves()

	once := Not(a)
	require.IsType(t, &MustNotCondition{}, once)
	assert.Equal(t, []Condition{a}, once.(*MustNotCondition).Conditions())

	twice := Not(once)
	require.IsType(t, &MustCondition{}, twice)
	assert.Equal(t, []Condition{a}, twice.(*MustCondition).Conditions())
}

func TestNot_SwapsMustAndMustNot(t *testing.T) {
	a, b, _ := leaves()

	notMust := Not(Must(a, b))
	require.IsType(t, &MustNotCondition{}, notMust)
	assert.Equal(t, []Condition{a, b}, notMust.(*MustNotCondition).Conditions())

	notMustNot := Not(MustNot(a, b))
	require.IsType(t, &MustCondition{}, notMustNot)
	assert.Equal(t, []Condition{a, b}, notMustNot.(*MustCondition).Conditions())
}

func TestNot_WrapsShould(t *testing.T) {
	a, b, _ := leaves()
	should := Or(a, b)

	got := Not(should)

	require.IsType(t, &MustNotCondition{}, got)
	assert.Equal(t, []Condition{should}, got.(*MustNotCondition).Conditions())
}

func TestNot_DoesNotShareChildSlice(t *testing.T) {
	a, b, c := leaves()
	must := Must(a, b)

	negated := Not(must).(*MustNotCondition)
	negated.conditions[0] = c

	assert.Same(t, a, must.Conditions()[0])
}

func TestMinShould_FlattensSameMinCount(t *testing.T) {
	x, y, _ := leaves()

	inner, err := MinShould(2, x, y)
	require.NoError(t, err)
	outer, err := MinShould(2, inner)
	require.NoError(t, err)

	assert.Equal(t, 2, outer.MinCount())
	assert.Equal(t, []Condition{x, y}, outer.Conditions())
}

func TestMinShould_KeepsDifferentMinCountNested(t *testing.T) {
	x, y, _ := leaves()

	inner, err := MinShould(3, x, y)
	require.NoError(t, err)
	outer, err := MinShould(2, inner)
	require.NoError(t, err)

	require.Len(t, outer.Conditions(), 1)
	assert.Same(t, inner, outer.Conditions()[0])
}

func TestMinShould_UnwrapsGroup(t *testing.T) {
	x, y, z := leaves()

	same, err := MinShould(1, x, y)
	require.NoError(t, err)
	other, err := MinShould(2, y, z)
	require.NoError(t, err)

	got, err := MinShould(1, Combine(same, other), z)
	require.NoError(t, err)

	assert.Equal(t, []Condition{x, y, other, z}, got.Conditions())
}

func TestMinShould_NegativeMinCount(t *testing.T) {
	x, _, _ := leaves()

	_, err := MinShould(-1, x)

	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestMinShould_AllowsNoConditions(t *testing.T) {
	got, err := MinShould(0)

	require.NoError(t, err)
	assert.Empty(t, got.Conditions())
}

func TestNested_Validation(t *testing.T) {
	a, _, _ := leaves()

	_, err := Nested("", Must(a))
	assert.ErrorIs(t, err, ErrNullArgument)

	_, err = Nested("diet")
	assert.ErrorIs(t, err, ErrNullArgument)

	n, err := Nested("diet", Must(a))
	require.NoError(t, err)
	assert.Equal(t, "diet", n.FieldName())
	assert.Equal(t, KindNested, n.Kind())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Must", KindMust.String())
	assert.Equal(t, "MustNot", KindMustNot.String())
	assert.Equal(t, "Should", KindShould.String())
	assert.Equal(t, "MinShould", KindMinShould.String())
	assert.Equal(t, "Nested", KindNested.String())
	assert.Equal(t, "Group", KindGroup.String())
	assert.Equal(t, "Leaf", KindLeaf.String())
	assert.Equal(t, "Unknown", Kind(42).String())
}
