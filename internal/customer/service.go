package customer

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Customer, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Customer, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(c Customer) (Customer, error) {
	return s.repo.Create(c)
}

func (s *Service) Update(id int, c Customer) (Customer, error) {
	return s.repo.Update(id, c)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *Service) UpsertByPhone(c Customer) (Customer, error) {
	return s.repo.UpsertByPhone(c)
}
