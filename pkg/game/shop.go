package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/powershooter/pkg/config"
	"github.com/decker502/powershooter/pkg/input"
	"github.com/decker502/powershooter/pkg/player"
	"github.com/decker502/powershooter/pkg/render"
	"github.com/decker502/powershooter/pkg/systems"
	"github.com/decker502/powershooter/pkg/utils"
)

// Purchase failures. Both leave the player unchanged.
var (
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrMaxedUpgrade      = errors.New("upgrade already at max level")
	ErrUnknownItem       = errors.New("unknown shop item")
)

// Shop item effects.
const (
	shopHealthBoost = 20
	shopDamageBoost = 0.15
	shopSpeedBoost  = 0.1
)

const shopMessageDuration = 1500

// Shop list layout: items fill the left column top to bottom, then the right.
const (
	shopListX      = 90
	shopListY      = 150
	shopListWidth  = 300
	shopColumnStep = 320
	shopColumns    = 2
	shopRows       = 5
	shopItemHeight = 60
)

var (
	shopTitle     = utils.MustHexColor("#f1c40f")
	shopItemFill  = color.RGBA{R: 52, G: 73, B: 94, A: 0xb3}
	shopItemHover = color.RGBA{R: 52, G: 152, B: 219, A: 0xcc}
	affordable    = utils.MustHexColor("#2ecc71")
	unaffordable  = utils.MustHexColor("#e74c3c")
	shopHint      = utils.MustHexColor("#7f8c8d")
)

// Shop sells upgrades for coins between fights.
type Shop struct {
	catalogue *config.ShopConfig
	messages  systems.Messenger
	selected  int // hovered item, -1 for none
}

// NewShop creates a shop over the catalogue. messages may be nil.
func NewShop(catalogue *config.ShopConfig, messages systems.Messenger) *Shop {
	if catalogue == nil {
		catalogue = config.DefaultShop()
	}
	return &Shop{catalogue: catalogue, messages: messages, selected: -1}
}

// SetCatalogue swaps the items on sale.
func (s *Shop) SetCatalogue(catalogue *config.ShopConfig) {
	if catalogue != nil {
		s.catalogue = catalogue
	}
}

// Items lists what is on sale, in display order.
func (s *Shop) Items() []config.ShopItem { return s.catalogue.Items }

// Purchase buys one item for the player.
//
// Errors are ErrUnknownItem, ErrInsufficientCoins or ErrMaxedUpgrade; the
// last two also show a message. On success the cost is deducted and a
// confirmation is shown.
func (s *Shop) Purchase(p *player.Player, id config.ShopItemID) error {
	item, ok := s.catalogue.Item(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	if p.Coins < item.Cost {
		s.show("Not enough coins!")
		return ErrInsufficientCoins
	}

	switch item.ID {
	case config.ShopHealth:
		p.MaxHealth += shopHealthBoost
		p.Health += shopHealthBoost
	case config.ShopDamage:
		p.DamageMultiplier += shopDamageBoost
	case config.ShopSpeed:
		p.SpeedMultiplier += shopSpeedBoost
	case config.ShopKey:
		p.AddKey()
	case config.ShopWeapon:
		if !p.BuyWeaponLevel() {
			s.show("Weapon already at max level!")
			return ErrMaxedUpgrade
		}
	case config.ShopVitality:
		p.UpgradeVitality()
	case config.ShopPower:
		p.UpgradePower()
	case config.ShopFireRate:
		if !p.UpgradeFireRate() {
			s.show("Fire rate already at max level!")
			return ErrMaxedUpgrade
		}
	case config.ShopRegen:
		p.UpgradeRegen()
	case config.ShopAgility:
		p.UpgradeAgility()
	}
	p.SpendCoins(item.Cost)
	log.Printf("[Shop] Purchased %s for %d coins (%d left)", item.ID, item.Cost, p.Coins)
	s.show(fmt.Sprintf("Purchased: %s!", item.Name))
	return nil
}

// ItemAt returns the index of the item listed under (x, y), or -1.
func (s *Shop) ItemAt(x, y float64) int {
	if y < shopListY {
		return -1
	}
	row := int((y - shopListY) / shopItemHeight)
	if row >= shopRows {
		return -1
	}
	for col := 0; col < shopColumns; col++ {
		left := float64(shopListX + col*shopColumnStep)
		if x < left || x > left+shopListWidth {
			continue
		}
		if i := col*shopRows + row; i < len(s.catalogue.Items) {
			return i
		}
		return -1
	}
	return -1
}

// itemOrigin is the top-left corner of the i-th item's box.
func itemOrigin(i int) (float64, float64) {
	col, row := i/shopRows, i%shopRows
	return float64(shopListX + col*shopColumnStep), float64(shopListY + row*shopItemHeight)
}

// maxed reports whether buying id again would be refused.
func maxed(p *player.Player, id config.ShopItemID) bool {
	switch id {
	case config.ShopWeapon:
		return p.WeaponMaxed()
	case config.ShopFireRate:
		return p.FireRateMaxed()
	}
	return false
}

// Update tracks the hovered item and buys it on click.
func (s *Shop) Update(p *player.Player, in input.Input) {
	if in == nil || p == nil {
		return
	}
	s.selected = s.ItemAt(in.PointerPosition())
	if s.selected < 0 || !in.IsActionPressed(input.ActionFire) {
		return
	}
	if err := s.Purchase(p, s.catalogue.Items[s.selected].ID); err != nil {
		log.Printf("[Shop] Purchase failed: %v", err)
	}
}

// Reset clears the hover state when the shop closes.
func (s *Shop) Reset() { s.selected = -1 }

// Draw shows the shop over the paused game.
func (s *Shop) Draw(r render.Renderer, p *player.Player) {
	w, h := r.Size()
	r.FillRect(utils.NewRect(0, 0, w, h), render.Shade)
	r.DrawText("POWER SHOP", w/2, 80, render.TextStyle{Color: shopTitle, Align: render.AlignCenter, Scale: 2.5})
	if p != nil {
		r.DrawText(fmt.Sprintf("Coins: %d", p.Coins), w/2, 120, render.TextStyle{Color: render.Gold, Align: render.AlignCenter, Scale: 1.5})
	}

	for i, item := range s.catalogue.Items {
		x, y := itemOrigin(i)
		fill := shopItemFill
		if i == s.selected {
			fill = shopItemHover
		}
		r.FillRect(utils.NewRect(x, y, shopListWidth, shopItemHeight-10), fill)

		price := fmt.Sprintf("%d coins", item.Cost)
		costColor := affordable
		switch {
		case p != nil && maxed(p, item.ID):
			price = "MAX"
			costColor = shopHint
		case p == nil || p.Coins < item.Cost:
			costColor = unaffordable
		}
		r.DrawText(item.Name, x+15, y+22, render.TextStyle{Color: render.White, Scale: 1.2})
		r.DrawText(item.Description, x+15, y+42, render.TextStyle{Color: render.White})
		r.DrawText(price, x+shopListWidth-15, y+32, render.TextStyle{Color: costColor, Align: render.AlignRight, Scale: 1.2})
	}
	r.DrawText("Press ESC to close shop", w/2, h-50, render.TextStyle{Color: shopHint, Align: render.AlignCenter, Scale: 1.2})
}

func (s *Shop) show(text string) {
	if s.messages != nil {
		s.messages.ShowMessage(text, shopMessageDuration)
	}
}
