package employee_test

import (
	"context"
	"errors"
	"testing"

	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"
	employeeMock "go-hrms/internal/employee/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupDirectoryTest(t *testing.T) (employee.Directory, *employeeMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := employeeMock.NewMockRepository(ctrl)
	return employee.NewDirectory(repo), repo
}

func TestDirectory_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("known employee", func(t *testing.T) {
		dir, repo := setupDirectoryTest(t)
		repo.EXPECT().Exists(ctx, int64(10001)).Return(true, nil)

		ok, err := dir.Exists(ctx, 10001)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("non positive id never hits storage", func(t *testing.T) {
		dir, _ := setupDirectoryTest(t)

		ok, err := dir.Exists(ctx, 0)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("storage failure", func(t *testing.T) {
		dir, repo := setupDirectoryTest(t)
		repo.EXPECT().Exists(ctx, int64(10001)).Return(false, errors.New("conn refused"))

		ok, err := dir.Exists(ctx, 10001)
		assert.False(t, ok)
		assert.ErrorIs(t, err, employeeerrors.ErrDirectoryUnavailable)
	})
}

func TestDirectory_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		dir, repo := setupDirectoryTest(t)
		repo.EXPECT().FindByID(ctx, int64(10001)).Return(&employee.Employee{EmpNo: 10001, FirstName: "Georgi"}, nil)

		emp, err := dir.Get(ctx, 10001)
		assert.NoError(t, err)
		assert.Equal(t, "Georgi", emp.FirstName)
	})

	t.Run("not found", func(t *testing.T) {
		dir, repo := setupDirectoryTest(t)
		repo.EXPECT().FindByID(ctx, int64(42)).Return(nil, gorm.ErrRecordNotFound)

		emp, err := dir.Get(ctx, 42)
		assert.Nil(t, emp)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestDirectory_ListIDs(t *testing.T) {
	ctx := context.Background()
	dir, repo := setupDirectoryTest(t)
	repo.EXPECT().ListIDs(ctx).Return([]int64{10001, 10002}, nil)

	ids, err := dir.ListIDs(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []int64{10001, 10002}, ids)
}
