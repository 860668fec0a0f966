package minefield

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/minesweeper/internal/dependencies/mocks"
	"github.com/mcoot/minesweeper/internal/dependencies/random"
	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random, testutil.NopLogger())
}

// bruteForceAdjacency counts mined cells at Chebyshev distance 1 without using Neighbors
func bruteForceAdjacency(board *model.Board, row, col int) int {
	count := 0
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if r == row && c == col {
				continue
			}
			if r < 0 || r >= board.Rows || c < 0 || c >= board.Cols {
				continue
			}
			if board.Cells[r][c].IsMine {
				count++
			}
		}
	}
	return count
}

// PlaceMines tests

func (s *ServiceSuite) TestPlaceMinesUsesFirstCandidatesWhenRandomReturnsZero() {
	board := model.NewBoard(5, 5, 3)

	placed := s.service.PlaceMines(board, model.Position{Row: 4, Col: 4})

	s.Equal(3, placed)
	s.Equal([]model.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, board.MinePositions())
	s.True(board.MinesPlaced)
}

func (s *ServiceSuite) TestPlaceMinesDrawsFromRemainingCandidates() {
	board := model.NewBoard(5, 5, 1)
	// 25 cells minus the 4-cell corner zone leaves 21 candidates; index 20 is (4,2)
	s.random.QueueIntn(20)

	s.service.PlaceMines(board, model.Position{Row: 4, Col: 4})

	s.Equal([]model.Position{{Row: 4, Col: 2}}, board.MinePositions())
	s.Equal([]int{21}, s.random.Calls)
}

func (s *ServiceSuite) TestPlaceMinesShrinksRangeEachDraw() {
	board := model.NewBoard(5, 5, 3)

	s.service.PlaceMines(board, model.Position{Row: 2, Col: 2})

	// Interior origin forbids 9 cells, leaving 16
	s.Equal([]int{16, 15, 14}, s.random.Calls)
}

func (s *ServiceSuite) TestPlaceMinesAvoidsSafeZone() {
	for seed := uint64(0); seed < 50; seed++ {
		service := New(random.NewSeeded(seed), testutil.NopLogger())
		board := model.NewBoard(9, 9, 30)
		origin := model.Position{Row: int(seed % 9), Col: int((seed * 7) % 9)}

		placed := service.PlaceMines(board, origin)

		s.Equal(30, placed)
		s.Len(board.MinePositions(), 30)
		zone := SafeZone(board, origin)
		for _, mine := range board.MinePositions() {
			s.False(zone.Has(mine), "seed %d: mine at %v inside safe zone of %v", seed, mine, origin)
		}
	}
}

func (s *ServiceSuite) TestPlaceMinesFillsEveryCandidateAtMaximumDensity() {
	board := model.NewBoard(5, 5, 16)
	origin := model.Position{Row: 2, Col: 2}

	s.service.PlaceMines(board, origin)

	s.Len(board.MinePositions(), 16)
	for _, pos := range board.Positions() {
		s.Equal(!SafeZone(board, origin).Has(pos), board.Cell(pos).IsMine, "cell %v", pos)
	}
}

func (s *ServiceSuite) TestPlaceMinesClampsToAvailableCandidates() {
	board := model.NewBoard(5, 5, 30)

	placed := s.service.PlaceMines(board, model.Position{Row: 2, Col: 2})

	s.Equal(16, placed)
	s.Equal(16, board.MineCount)
	s.Len(board.MinePositions(), 16)
}

func (s *ServiceSuite) TestPlaceMinesOnTinyBoardPlacesNothing() {
	board := model.NewBoard(1, 3, 2)

	placed := s.service.PlaceMines(board, model.Position{Row: 0, Col: 1})

	s.Equal(0, placed)
	s.Equal(0, board.MineCount)
	s.Empty(board.MinePositions())
}

func (s *ServiceSuite) TestPlaceMinesRunsOnlyOnce() {
	board := model.NewBoard(5, 5, 3)
	s.service.PlaceMines(board, model.Position{Row: 4, Col: 4})
	before := board.MinePositions()

	placed := s.service.PlaceMines(board, model.Position{Row: 0, Col: 0})

	s.Equal(0, placed)
	s.Equal(before, board.MinePositions())
}

func (s *ServiceSuite) TestSeededPlacementIsReproducible() {
	a := model.NewBoard(16, 30, 99)
	b := model.NewBoard(16, 30, 99)
	origin := model.Position{Row: 8, Col: 15}

	New(random.NewSeeded(1234), testutil.NopLogger()).PlaceMines(a, origin)
	New(random.NewSeeded(1234), testutil.NopLogger()).PlaceMines(b, origin)

	s.Equal(a.MinePositions(), b.MinePositions())
}

// SafeZone tests

func (s *ServiceSuite) TestSafeZoneSizes() {
	board := model.NewBoard(5, 5, 1)

	s.Equal(4, SafeZone(board, model.Position{Row: 0, Col: 0}).Size())
	s.Equal(6, SafeZone(board, model.Position{Row: 0, Col: 2}).Size())
	s.Equal(9, SafeZone(board, model.Position{Row: 2, Col: 2}).Size())
}

// ComputeAdjacency tests

func (s *ServiceSuite) TestComputeAdjacencyMatchesBruteForce() {
	for seed := uint64(0); seed < 20; seed++ {
		service := New(random.NewSeeded(seed), testutil.NopLogger())
		board := model.NewBoard(12, 17, 40)
		service.PlaceMines(board, model.Position{Row: 6, Col: 8})

		ComputeAdjacency(board)

		for row := 0; row < board.Rows; row++ {
			for col := 0; col < board.Cols; col++ {
				cell := board.Cells[row][col]
				if cell.IsMine {
					continue
				}
				s.Equal(bruteForceAdjacency(board, row, col), cell.AdjacentMines, "seed %d cell (%d,%d)", seed, row, col)
			}
		}
	}
}

func (s *ServiceSuite) TestComputeAdjacencyKnownLayout() {
	board := model.NewBoard(5, 5, 2)
	NewFixedLayout(model.Position{Row: 0, Col: 0}, model.Position{Row: 0, Col: 2}).PlaceMines(board, model.Position{})

	ComputeAdjacency(board)

	s.Equal(2, board.Cells[0][1].AdjacentMines)
	s.Equal(2, board.Cells[1][1].AdjacentMines)
	s.Equal(1, board.Cells[1][0].AdjacentMines)
	s.Equal(1, board.Cells[1][3].AdjacentMines)
	s.Equal(0, board.Cells[4][4].AdjacentMines)
}

func (s *ServiceSuite) TestComputeAdjacencyIsIdempotent() {
	board := model.NewBoard(8, 8, 12)
	New(random.NewSeeded(9), testutil.NopLogger()).PlaceMines(board, model.Position{Row: 3, Col: 3})

	ComputeAdjacency(board)
	first := make([][]model.Cell, board.Rows)
	for i := range board.Cells {
		first[i] = append([]model.Cell(nil), board.Cells[i]...)
	}
	ComputeAdjacency(board)

	s.Equal(first, board.Cells)
}

// FixedLayout tests

func (s *ServiceSuite) TestFixedLayoutPlantsGivenMines() {
	board := model.NewBoard(5, 5, 10)

	placed := NewFixedLayout(model.Position{Row: 2, Col: 2}).PlaceMines(board, model.Position{Row: 2, Col: 2})

	s.Equal(1, placed)
	s.Equal(1, board.MineCount)
	s.True(board.Cells[2][2].IsMine)
	s.True(board.MinesPlaced)
}

func (s *ServiceSuite) TestFixedLayoutSkipsDuplicatesAndOutOfBounds() {
	board := model.NewBoard(5, 5, 10)

	placed := NewFixedLayout(
		model.Position{Row: 1, Col: 1},
		model.Position{Row: 1, Col: 1},
		model.Position{Row: 9, Col: 0},
	).PlaceMines(board, model.Position{})

	s.Equal(1, placed)
	s.Equal(1, board.MineCount)
}
