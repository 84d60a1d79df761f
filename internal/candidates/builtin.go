package candidates

import (
	"context"

	"userpicker/internal/picker"
)

var sampleUsers = []picker.Candidate{
	{ID: "1", Label: "Alice Johnson", Avatar: "https://i.pravatar.cc/150?u=1", Email: "alice.johnson@example.com"},
	{ID: "2", Label: "Bob Smith", Avatar: "https://i.pravatar.cc/150?u=2", Email: "bob.smith@example.com"},
	{ID: "3", Label: "Albert Chen", Avatar: "https://i.pravatar.cc/150?u=3", Email: "albert.chen@example.com"},
	{ID: "4", Label: "Diana Prince", Avatar: "https://i.pravatar.cc/150?u=4", Email: "diana.prince@example.com"},
	{ID: "5", Label: "Ethan Hunt", Avatar: "https://i.pravatar.cc/150?u=5", Email: "ethan.hunt@example.com"},
	{ID: "6", Label: "Fiona Gallagher", Avatar: "https://i.pravatar.cc/150?u=6", Email: "fiona.gallagher@example.com"},
	{ID: "7", Label: "George Martin", Avatar: "https://i.pravatar.cc/150?u=7", Email: "george.martin@example.com"},
	{ID: "8", Label: "Hannah Baker", Avatar: "https://i.pravatar.cc/150?u=8", Email: "hannah.baker@example.com"},
	{ID: "9", Label: "Ivan Petrov", Avatar: "https://i.pravatar.cc/150?u=9", Email: "ivan.petrov@example.com"},
	{ID: "10", Label: "Julia Roberts", Avatar: "https://i.pravatar.cc/150?u=10", Email: "julia.roberts@example.com"},
	{ID: "11", Label: "Kevin Malone", Avatar: "https://i.pravatar.cc/150?u=11", Email: "kevin.malone@example.com"},
	{ID: "12", Label: "Laura Palmer", Avatar: "https://i.pravatar.cc/150?u=12", Email: "laura.palmer@example.com"},
}

type builtinSource struct{}

// Builtin returns the bundled sample users.
func Builtin() Source {
	return builtinSource{}
}

func (builtinSource) Name() string { return "builtin" }

func (builtinSource) Load(context.Context) ([]picker.Candidate, error) {
	out := make([]picker.Candidate, len(sampleUsers))
	copy(out, sampleUsers)
	return out, nil
}
