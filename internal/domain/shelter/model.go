package shelter

import "time"

// District is one of the 25 administrative districts.
type District string

const (
	DistrictAmpara       District = "AMPARA"
	DistrictAnuradhapura District = "ANURADHAPURA"
	DistrictBadulla      District = "BADULLA"
	DistrictBatticaloa   District = "BATTICALOA"
	DistrictColombo      District = "COLOMBO"
	DistrictGalle        District = "GALLE"
	DistrictGampaha      District = "GAMPAHA"
	DistrictHambantota   District = "HAMBANTOTA"
	DistrictJaffna       District = "JAFFNA"
	DistrictKalutara     District = "KALUTARA"
	DistrictKandy        District = "KANDY"
	DistrictKegalle      District = "KEGALLE"
	DistrictKilinochchi  District = "KILINOCHCHI"
	DistrictKurunegala   District = "KURUNEGALA"
	DistrictMannar       District = "MANNAR"
	DistrictMatale       District = "MATALE"
	DistrictMatara       District = "MATARA"
	DistrictMonaragala   District = "MONARAGALA"
	DistrictMullaitivu   District = "MULLAITIVU"
	DistrictNuwaraEliya  District = "NUWARA_ELIYA"
	DistrictPolonnaruwa  District = "POLONNARUWA"
	DistrictPuttalam     District = "PUTTALAM"
	DistrictRatnapura    District = "RATNAPURA"
	DistrictTrincomalee  District = "TRINCOMALEE"
	DistrictVavuniya     District = "VAVUNIYA"
)

var districts = map[District]struct{}{
	DistrictAmpara: {}, DistrictAnuradhapura: {}, DistrictBadulla: {},
	DistrictBatticaloa: {}, DistrictColombo: {}, DistrictGalle: {},
	DistrictGampaha: {}, DistrictHambantota: {}, DistrictJaffna: {},
	DistrictKalutara: {}, DistrictKandy: {}, DistrictKegalle: {},
	DistrictKilinochchi: {}, DistrictKurunegala: {}, DistrictMannar: {},
	DistrictMatale: {}, DistrictMatara: {}, DistrictMonaragala: {},
	DistrictMullaitivu: {}, DistrictNuwaraEliya: {}, DistrictPolonnaruwa: {},
	DistrictPuttalam: {}, DistrictRatnapura: {}, DistrictTrincomalee: {},
	DistrictVavuniya: {},
}

func ValidDistrict(d District) bool {
	_, ok := districts[d]
	return ok
}

type Shelter struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Code      string    `gorm:"size:16;not null;uniqueIndex"`
	District  District  `gorm:"type:varchar(16);not null;index"`
	Phone     string    `gorm:"size:20"`
	Address   string    `gorm:""`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
