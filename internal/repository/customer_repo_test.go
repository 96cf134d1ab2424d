package repository_test

import (
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/domain"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/storage"
)

func (s *RepositorySuite) TestCustomerSaveAndFind() {
	saved, err := s.Customers.Save(s.Ctx, &domain.Customer{
		Name:    "Ravi Kumar",
		Email:   "ravi@example.com",
		Contact: "9876543210",
		Address: "12 MG Road",
	})

	s.Require().NoError(err)
	s.Require().NotZero(saved.ID)
	s.Require().False(saved.CreatedDate.IsZero())

	found, err := s.Customers.FindByID(s.Ctx, saved.ID)
	s.Require().NoError(err)

	customer, ok := found.Get()
	s.Require().True(ok)
	s.Require().Equal("Ravi Kumar", customer.Name)
	s.Require().Equal("ravi@example.com", customer.Email)

	byEmail, err := s.Customers.FindByEmail(s.Ctx, "ravi@example.com")
	s.Require().NoError(err)
	s.Require().True(byEmail.IsPresent())
}

func (s *RepositorySuite) TestCustomerFindMissing() {
	found, err := s.Customers.FindByID(s.Ctx, 99999)
	s.Require().NoError(err)
	s.Require().True(found.IsAbsent())
}

func (s *RepositorySuite) TestCustomerUpdate() {
	saved, err := s.Customers.Save(s.Ctx, &domain.Customer{
		Name:  "Old Name",
		Email: "update@example.com",
	})
	s.Require().NoError(err)

	saved.Name = "New Name"
	saved.Address = "5 New Street"

	_, err = s.Customers.Update(s.Ctx, saved)
	s.Require().NoError(err)

	found, err := s.Customers.FindByID(s.Ctx, saved.ID)
	s.Require().NoError(err)

	customer, ok := found.Get()
	s.Require().True(ok)
	s.Require().Equal("New Name", customer.Name)
	s.Require().Equal("5 New Street", customer.Address)
}

func (s *RepositorySuite) TestCustomerUpdateMissing() {
	_, err := s.Customers.Update(s.Ctx, &domain.Customer{
		ID:    99999,
		Name:  "Ghost",
		Email: "ghost@example.com",
	})

	s.Require().Error(err)

	var dbErr *storage.DatabaseError
	s.Require().ErrorAs(err, &dbErr)
}

func (s *RepositorySuite) TestCustomerDelete() {
	saved, err := s.Customers.Save(s.Ctx, &domain.Customer{
		Name:  "To Delete",
		Email: "delete@example.com",
	})
	s.Require().NoError(err)

	deleted, err := s.Customers.Delete(s.Ctx, saved.ID)
	s.Require().NoError(err)
	s.Require().True(deleted)

	deleted, err = s.Customers.Delete(s.Ctx, saved.ID)
	s.Require().NoError(err)
	s.Require().False(deleted)

	found, err := s.Customers.FindByID(s.Ctx, saved.ID)
	s.Require().NoError(err)
	s.Require().True(found.IsAbsent())
}

func (s *RepositorySuite) TestCustomerUniqueEmail() {
	_, err := s.Customers.Save(s.Ctx, &domain.Customer{
		Name:  "First",
		Email: "dup@example.com",
	})
	s.Require().NoError(err)

	_, err = s.Customers.Save(s.Ctx, &domain.Customer{
		Name:  "Second",
		Email: "dup@example.com",
	})
	s.Require().Error(err)
	s.Require().True(storage.IsUniqueViolation(err))
}

func (s *RepositorySuite) TestCustomerFindAll() {
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := s.Customers.Save(s.Ctx, &domain.Customer{Name: "Customer", Email: email})
		s.Require().NoError(err)
	}

	all, err := s.Customers.FindAll(s.Ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
}
