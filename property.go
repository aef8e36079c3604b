package vcard

import (
	"github.com/ghettovoice/vcard/internal/util"
)

// Property is a single property of a card.
type Property interface {
	// Name returns the upper-case property name.
	Name() string
	// Base returns the group and parameters of the property.
	Base() *PropertyBase
	// Equal compares the property with another one.
	Equal(val any) bool
}

// PropertyBase holds the attributes common to every property.
// It is embedded into property types.
type PropertyBase struct {
	Group  string
	Params Params
}

// Base returns the base itself.
func (b *PropertyBase) Base() *PropertyBase { return b }

func (b *PropertyBase) equalBase(other *PropertyBase) bool {
	return util.EqFold(b.Group, other.Group) && b.Params.Equal(other.Params)
}

func (b *PropertyBase) cloneBase() PropertyBase {
	return PropertyBase{Group: b.Group, Params: b.Params.Clone()}
}

// CardHolder is implemented by properties that may hold an embedded card, such as AGENT.
type CardHolder interface {
	Property
	EmbeddedCard() *Card
	SetEmbeddedCard(c *Card)
}

// Standard property names.
const (
	PropBegin        = "BEGIN"
	PropEnd          = "END"
	PropVersion      = "VERSION"
	PropSource       = "SOURCE"
	PropName         = "NAME"
	PropProfile      = "PROFILE"
	PropKind         = "KIND"
	PropXML          = "XML"
	PropFN           = "FN"
	PropN            = "N"
	PropNickname     = "NICKNAME"
	PropPhoto        = "PHOTO"
	PropBday         = "BDAY"
	PropAnniversary  = "ANNIVERSARY"
	PropBirthplace   = "BIRTHPLACE"
	PropDeathplace   = "DEATHPLACE"
	PropDeathdate    = "DEATHDATE"
	PropGender       = "GENDER"
	PropAdr          = "ADR"
	PropLabel        = "LABEL"
	PropTel          = "TEL"
	PropEmail        = "EMAIL"
	PropMailer       = "MAILER"
	PropIMPP         = "IMPP"
	PropLang         = "LANG"
	PropTZ           = "TZ"
	PropGeo          = "GEO"
	PropTitle        = "TITLE"
	PropRole         = "ROLE"
	PropLogo         = "LOGO"
	PropAgent        = "AGENT"
	PropOrg          = "ORG"
	PropMember       = "MEMBER"
	PropRelated      = "RELATED"
	PropCategories   = "CATEGORIES"
	PropNote         = "NOTE"
	PropProdID       = "PRODID"
	PropRev          = "REV"
	PropSortString   = "SORT-STRING"
	PropSound        = "SOUND"
	PropUID          = "UID"
	PropClientPIDMap = "CLIENTPIDMAP"
	PropURL          = "URL"
	PropClass        = "CLASS"
	PropKey          = "KEY"
	PropFBURL        = "FBURL"
	PropCalAdrURI    = "CALADRURI"
	PropCalURI       = "CALURI"
	PropExpertise    = "EXPERTISE"
	PropHobby        = "HOBBY"
	PropInterest     = "INTEREST"
	PropOrgDirectory = "ORG-DIRECTORY"
	PropXProdID      = "X-PRODID"
)

// isStructural reports whether the name is handled by the document framing
// rather than by a codec.
func isStructural(name string) bool {
	return util.EqFold(name, PropBegin) || util.EqFold(name, PropEnd) || util.EqFold(name, PropVersion)
}
