package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"droscher.com/MyWhiskies/pkg/model"
)

type ImageTestSuite struct {
	RepositorySuite
}

func TestImageTestSuite(t *testing.T) {
	suite.Run(t, new(ImageTestSuite))
}

func (suite *ImageTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *ImageTestSuite) TestRemoveBottleImages_DeletesThenAppliesMoves() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "bottle_images" WHERE bottle_id = $1 AND sequence IN ($2)`)).
		WithArgs(5, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "bottle_images" SET "sequence"=$1 WHERE bottle_id = $2 AND sequence = $3`)).
		WithArgs(1, 5, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "bottle_images" SET "sequence"=$1 WHERE bottle_id = $2 AND sequence = $3`)).
		WithArgs(2, 5, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	var applied []model.SequenceMove

	moves := []model.SequenceMove{{From: 2, To: 1}, {From: 3, To: 2}}
	err := suite.repository.RemoveBottleImages(context.Background(), 5, []int{1}, moves, func(move model.SequenceMove) error {
		applied = append(applied, move)

		return nil
	})

	suite.Require().NoError(err)
	suite.Equal(moves, applied)
}

func (suite *ImageTestSuite) TestRemoveBottleImages_DeletesWithoutMoves() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "bottle_images" WHERE bottle_id = $1 AND sequence IN ($2,$3)`)).
		WithArgs(5, 2, 3).
		WillReturnResult(sqlmock.NewResult(0, 2))
	suite.mock.ExpectCommit()

	suite.NoError(suite.repository.RemoveBottleImages(context.Background(), 5, []int{2, 3}, nil, func(model.SequenceMove) error {
		return errors.New("not called")
	}))
}

func (suite *ImageTestSuite) TestRemoveBottleImages_RollsBackDeleteWhenApplyFails() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^DELETE FROM "bottle_images"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(`^UPDATE "bottle_images"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectRollback()

	err := suite.repository.RemoveBottleImages(context.Background(), 5, []int{1}, []model.SequenceMove{{From: 2, To: 1}}, func(model.SequenceMove) error {
		return errors.New("copy failed")
	})

	suite.EqualError(err, "copy failed")
}

func (suite *ImageTestSuite) TestGetBottleIDs_PlucksIDs() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "bottles"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(5))

	ids, err := suite.repository.GetBottleIDs(context.Background())

	suite.Require().NoError(err)
	suite.Equal([]uint{1, 5}, ids)
}
