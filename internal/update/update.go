package update

import (
	"time"

	"github.com/ThatOtherAndrew/Carambolage/internal/models"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	acceleration = 18.0 // units/s² at full throttle
	drag         = 0.6  // share of speed lost per second
	maxSpeed     = 28.0
	maxReverse   = 8.0
	steering     = 2.4 // rad/s at full lock and top speed
)

type App struct {
	app *models.Game
}

func New(app *models.Game) *App {
	return &App{app: app}
}

// UpdateCar advances the player car by dt using the controller's current
// axes: Y is throttle and brake, X is steering.
func (a *App) UpdateCar(dt time.Duration) {
	seconds := float32(dt.Seconds())
	car := &a.app.Player
	input := a.app.Controller

	car.Speed += input.YAxis() * acceleration * seconds
	car.Speed -= car.Speed * min(drag*seconds, 1)
	car.Speed = mgl32.Clamp(car.Speed, -maxReverse, maxSpeed)

	// steering authority grows with speed so a parked car cannot spin
	car.Heading -= input.XAxis() * steering * seconds * (car.Speed / maxSpeed)

	car.Position = car.Position.Add(car.Forward().Mul(car.Speed * seconds))
}
