package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Bird   = donburi.NewTag().SetName("Bird")
)

// Resolv tags for reach checks
const (
	ResolvCharacter = "character"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
	ResolvBird      = "Bird"
)
