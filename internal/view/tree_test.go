package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-board/testing/suite"
)

func labels(items []MoveItem) []string {
	result := make([]string, len(items))
	for i, item := range items {
		result[i] = item.Label
	}

	return result
}

func TestRender_NewGame(t *testing.T) {
	st := suite.New(t)
	game := tictactoe.NewGame(st.Logger)

	// When: rendering a fresh game
	tree := Render(game)

	// Then: the board is empty and the only item is the inert game start
	assert.Equal(t, "game-board", tree.BoardClass)
	assert.Equal(t, "status", tree.StatusClass)
	assert.Equal(t, "Next player: X", tree.Status.Text)
	assert.Equal(t, "Sort Descending", tree.SortLabel)
	assert.Equal(t, []MoveItem{{Move: 0, Label: "Go to game start", Current: true}}, tree.Moves)

	for index := 0; index < entity.BoardSize; index++ {
		square := tree.Square(index)
		assert.Equal(t, index, square.Index)
		assert.Equal(t, entity.EmptyCell, square.Value)
		assert.False(t, square.Highlight)
	}
}

func TestRender_Board(t *testing.T) {
	st := suite.New(t)
	game := tictactoe.NewGame(st.Logger)
	st.Play(game, 0, 5)

	tree := Render(game)

	// Then: rows and columns map to row*3+col
	assert.Equal(t, Square{Index: 0, Value: entity.PlayerX}, tree.Rows[0][0])
	assert.Equal(t, Square{Index: 5, Value: entity.PlayerO}, tree.Rows[1][2])
	assert.Equal(t, Square{Index: 7, Value: entity.EmptyCell}, tree.Rows[2][1])
	assert.Equal(t, "Next player: X", tree.Status.Text)
}

func TestRender_Winner(t *testing.T) {
	st := suite.New(t)
	game := tictactoe.NewGame(st.Logger)

	// Given: X wins on the left column
	st.Play(game, 0, 1, 3, 4, 6)

	// When: rendering
	tree := Render(game)

	// Then: the status names X and only the winning line is highlighted
	assert.Equal(t, "Winner: X", tree.Status.Text)
	assert.Equal(t, "status winner", tree.StatusClass)
	assert.Equal(t, "game-board", tree.BoardClass)

	for index := 0; index < entity.BoardSize; index++ {
		expected := index == 0 || index == 3 || index == 6
		assert.Equal(t, expected, tree.Square(index).Highlight, "square %d", index)
	}
}

func TestRender_Draw(t *testing.T) {
	st := suite.New(t)
	game := tictactoe.NewGame(st.Logger)

	// Given: every cell is filled without a line
	st.Play(game, 0, 1, 2, 4, 3, 5, 7, 6, 8)

	// When: rendering
	tree := Render(game)

	// Then: the draw status and the draw styling are set
	assert.True(t, tree.IsDraw())
	assert.Equal(t, "The game is a draw.", tree.Status.Text)
	assert.Equal(t, "status draw", tree.StatusClass)
	assert.Equal(t, "game-board draw-effect", tree.BoardClass)
	for index := 0; index < entity.BoardSize; index++ {
		assert.False(t, tree.Square(index).Highlight)
	}
}

func TestRender_MoveLabels(t *testing.T) {
	st := suite.New(t)
	game := tictactoe.NewGame(st.Logger)
	st.Play(game, 0, 4, 8)

	t.Run("Latest move is the inert current item", func(t *testing.T) {
		tree := Render(game)

		assert.Equal(t, []string{
			"Go to game start",
			"Go to move #(1, 1)",
			"Go to move #(2, 2)",
			"You are at move #(3, 3)",
		}, labels(tree.Moves))
		assert.Equal(t, []bool{false, false, false, true}, []bool{
			tree.Moves[0].Current, tree.Moves[1].Current, tree.Moves[2].Current, tree.Moves[3].Current,
		})
	})

	t.Run("Jumped to move is the current item", func(t *testing.T) {
		require.True(t, game.JumpTo(1))
		tree := Render(game)

		assert.Equal(t, []string{
			"Go to game start",
			"You are at move #(1, 1)",
			"Go to move #(2, 2)",
			"Go to move #(3, 3)",
		}, labels(tree.Moves))
		assert.True(t, tree.Moves[1].Current)
	})

	t.Run("Game start is a control when not current", func(t *testing.T) {
		require.True(t, game.JumpTo(2))
		tree := Render(game)

		assert.Equal(t, MoveItem{Move: 0, Label: "Go to game start"}, tree.Moves[0])
	})
}

func TestRender_SortOrder(t *testing.T) {
	st := suite.New(t)
	game := tictactoe.NewGame(st.Logger)
	st.Play(game, 2, 6)
	ascending := Render(game)

	// When: the order is toggled
	game.ToggleSortOrder()
	descending := Render(game)

	// Then: items are reversed but keep their history index
	assert.Equal(t, "Sort Ascending", descending.SortLabel)
	require.Len(t, descending.Moves, 3)
	assert.Equal(t, MoveItem{Move: 2, Label: "You are at move #(3, 1)", Current: true}, descending.Moves[0])
	assert.Equal(t, MoveItem{Move: 1, Label: "Go to move #(1, 3)"}, descending.Moves[1])
	assert.Equal(t, MoveItem{Move: 0, Label: "Go to game start"}, descending.Moves[2])

	// Then: the board and status are unaffected
	assert.Equal(t, ascending.Rows, descending.Rows)
	assert.Equal(t, ascending.Status, descending.Status)

	// When: toggled back
	game.ToggleSortOrder()

	// Then: the tree is the original one
	assert.Equal(t, ascending, Render(game))
}

func TestMoveLabel(t *testing.T) {
	entry := entity.NewHistoryEntry(entity.Board{}.With(7, entity.PlayerX), 7)

	assert.Equal(t, "Go to game start", MoveLabel(0, 0, entity.StartEntry()))
	assert.Equal(t, "Go to game start", MoveLabel(0, 3, entity.StartEntry()))
	assert.Equal(t, "You are at move #(3, 2)", MoveLabel(1, 1, entry))
	assert.Equal(t, "Go to move #(3, 2)", MoveLabel(1, 0, entry))
}
