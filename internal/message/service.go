package message

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Message, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Message, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(m Message) (Message, error) {
	return s.repo.Create(m)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
