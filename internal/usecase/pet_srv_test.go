package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/vinodbargaje/happy-paws-connect/internal/data/entity"
	"github.com/vinodbargaje/happy-paws-connect/internal/data/repository"
	"github.com/vinodbargaje/happy-paws-connect/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type petRepoStub struct {
	calls int

	pets     map[uuid.UUID]*entity.Pet
	created  *entity.Pet
	updated  *entity.Pet
	deletedI uuid.UUID
}

func (s *petRepoStub) Create(ctx context.Context, pet *entity.Pet) error {
	s.calls++
	s.created = pet
	return nil
}

func (s *petRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	s.calls++
	return s.pets[id], nil
}

func (s *petRepoStub) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pet, error) {
	s.calls++
	var out []*entity.Pet
	for _, pet := range s.pets {
		if pet.OwnerID == ownerID {
			out = append(out, pet)
		}
	}
	return out, nil
}

func (s *petRepoStub) Update(ctx context.Context, pet *entity.Pet) error {
	s.calls++
	s.updated = pet
	return nil
}

func (s *petRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	s.calls++
	s.deletedI = id
	return nil
}

func newPetFixture(pets ...*entity.Pet) (PetService, *petRepoStub) {
	stub := &petRepoStub{pets: make(map[uuid.UUID]*entity.Pet)}
	for _, pet := range pets {
		stub.pets[pet.ID] = pet
	}

	repo := &repository.Repository{Pet: stub}
	return NewPetService(repo, zap.NewNop()), stub
}

func TestGetPetsNilIdentityIsEmptyWithoutQuery(t *testing.T) {
	svc, stub := newPetFixture()

	pets, err := svc.GetPets(context.Background(), uuid.Nil)
	if err != nil {
		t.Fatalf("GetPets: %v", err)
	}
	if len(pets) != 0 {
		t.Errorf("pets len = %d, want 0", len(pets))
	}
	if stub.calls != 0 {
		t.Errorf("nil identity caused %d repository calls, want 0", stub.calls)
	}
}

func TestGetPetsOnlyReturnsOwn(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()

	mine := &entity.Pet{Base: entity.Base{ID: uuid.New()}, OwnerID: ownerID, Name: "Rex", PetType: "dog"}
	theirs := &entity.Pet{Base: entity.Base{ID: uuid.New()}, OwnerID: otherID, Name: "Milo", PetType: "cat"}

	svc, _ := newPetFixture(mine, theirs)

	pets, err := svc.GetPets(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("GetPets: %v", err)
	}
	if len(pets) != 1 || pets[0].Name != "Rex" {
		t.Errorf("pets = %+v, want only Rex", pets)
	}
}

func TestCreatePetSetsOwnerFromSession(t *testing.T) {
	ownerID := uuid.New()
	svc, stub := newPetFixture()

	resp, err := svc.CreatePet(context.Background(), ownerID, &request.CreatePetRequest{
		Name:    "Rex",
		PetType: "dog",
	})
	if err != nil {
		t.Fatalf("CreatePet: %v", err)
	}

	if stub.created == nil {
		t.Fatal("pet was not persisted")
	}
	if stub.created.OwnerID != ownerID {
		t.Errorf("owner = %s, want session identity %s", stub.created.OwnerID, ownerID)
	}
	if resp.Name != "Rex" {
		t.Errorf("response name = %q", resp.Name)
	}
}

func TestCreatePetValidation(t *testing.T) {
	svc, stub := newPetFixture()

	_, err := svc.CreatePet(context.Background(), uuid.New(), &request.CreatePetRequest{PetType: "dog"})
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("error = %v, want validation failure for missing name", err)
	}
	if stub.calls != 0 {
		t.Error("invalid request must not reach the repository")
	}
}

func TestUpdatePetAppliesPartialFields(t *testing.T) {
	ownerID := uuid.New()
	breed := "beagle"
	pet := &entity.Pet{Base: entity.Base{ID: uuid.New()}, OwnerID: ownerID, Name: "Rex", PetType: "dog", Breed: &breed}

	svc, stub := newPetFixture(pet)

	newName := "Rexy"
	resp, err := svc.UpdatePet(context.Background(), ownerID, pet.ID.String(), &request.UpdatePetRequest{
		Name: &newName,
	})
	if err != nil {
		t.Fatalf("UpdatePet: %v", err)
	}

	if stub.updated.Name != "Rexy" {
		t.Errorf("name = %q, want Rexy", stub.updated.Name)
	}
	// untouched fields keep their value
	if stub.updated.Breed == nil || *stub.updated.Breed != "beagle" {
		t.Errorf("breed = %v, want beagle preserved", stub.updated.Breed)
	}
	if resp.Name != "Rexy" {
		t.Errorf("response name = %q", resp.Name)
	}
}

func TestUpdatePetRejectsForeignPet(t *testing.T) {
	pet := &entity.Pet{Base: entity.Base{ID: uuid.New()}, OwnerID: uuid.New(), Name: "Rex", PetType: "dog"}
	svc, stub := newPetFixture(pet)

	name := "Hijacked"
	_, err := svc.UpdatePet(context.Background(), uuid.New(), pet.ID.String(), &request.UpdatePetRequest{
		Name: &name,
	})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want not-found for foreign pet", err)
	}
	if stub.updated != nil {
		t.Error("foreign pet must not be updated")
	}
}

func TestDeletePetOwnershipCheck(t *testing.T) {
	ownerID := uuid.New()
	pet := &entity.Pet{Base: entity.Base{ID: uuid.New()}, OwnerID: ownerID, Name: "Rex", PetType: "dog"}

	svc, stub := newPetFixture(pet)

	if err := svc.DeletePet(context.Background(), uuid.New(), pet.ID.String()); err == nil {
		t.Error("foreign delete should fail")
	}
	if stub.deletedI != uuid.Nil {
		t.Error("foreign delete must not reach the repository")
	}

	if err := svc.DeletePet(context.Background(), ownerID, pet.ID.String()); err != nil {
		t.Fatalf("DeletePet: %v", err)
	}
	if stub.deletedI != pet.ID {
		t.Error("owner delete did not reach the repository")
	}
}

func TestPetInvalidID(t *testing.T) {
	svc, _ := newPetFixture()

	if _, err := svc.GetPetByID(context.Background(), uuid.New(), "not-a-uuid"); err == nil ||
		!strings.Contains(err.Error(), "invalid") {
		t.Errorf("error = %v, want invalid-ID rejection", err)
	}
}
