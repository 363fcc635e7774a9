package search_test

import (
	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/benzene/boardgeo"
	"github.com/sarchlab/benzene/search"
)

var _ search.Collaborator = (*search.MockCollaborator)(nil)

var _ = Describe("MockCollaborator", func() {
	var (
		ctrl *gomock.Controller
		mock *search.MockCollaborator
		geo  *boardgeo.Geometry
		pos  *boardgeo.Position
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mock = search.NewMockCollaborator(ctrl)
		var err error
		geo, err = boardgeo.NewGeometry(3, 3)
		Expect(err).NotTo(HaveOccurred())
		pos = boardgeo.NewPosition(geo)
	})

	It("records Evaluate calls and returns the stubbed score", func() {
		mock.EXPECT().Evaluate(pos).Return(0.5)
		Expect(mock.Evaluate(pos)).To(Equal(0.5))
	})

	It("records a full play/undo round trip through the trait", func() {
		move := boardgeo.CellAt(1, 1)
		mock.EXPECT().ExecuteMove(pos, move).Return(nil)
		mock.EXPECT().UndoMove(pos, move).Return(nil)

		Expect(mock.ExecuteMove(pos, move)).To(Succeed())
		Expect(mock.UndoMove(pos, move)).To(Succeed())
	})

	It("returns the stubbed candidate move list", func() {
		moves := []boardgeo.Cell{boardgeo.CellAt(0, 0), boardgeo.CellAt(1, 1)}
		mock.EXPECT().GenerateMoves(pos).Return(moves)
		Expect(mock.GenerateMoves(pos)).To(Equal(moves))
	})
})
