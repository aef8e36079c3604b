package vcard

import (
	"slices"
	"sync"

	"github.com/ghettovoice/vcard/internal/util"
)

// Registry maps property names to codecs.
// The registration order defines the order of properties in written cards.
//
// A Registry is not safe for concurrent modification; registries shared between
// goroutines must not be modified after construction.
type Registry struct {
	codecs []Codec
	index  map[string]int
}

// NewRegistry creates a registry with the codecs.
func NewRegistry(codecs ...Codec) *Registry {
	r := &Registry{index: make(map[string]int, len(codecs))}
	for _, c := range codecs {
		r.Register(c)
	}
	return r
}

var defRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(
		newURICodec(PropSource, allVersions),
		newTextCodec(PropName, versions30),
		newTextCodec(PropProfile, versions30),
		newKindCodec(),
		newXMLCodec(),
		newTextCodec(PropFN, allVersions),
		newStructuredNameCodec(),
		newNicknameCodec(),
		newBinaryCodec(PropPhoto),
		newDateOrTimeCodec(PropBday, allVersions),
		newDateOrTimeCodec(PropAnniversary, versions40),
		newTextOrURICodec(PropBirthplace, versions40, DataTypeText),
		newTextOrURICodec(PropDeathplace, versions40, DataTypeText),
		newDateOrTimeCodec(PropDeathdate, versions40),
		newGenderCodec(),
		newAddressCodec(),
		newLabelCodec(),
		newTelephoneCodec(),
		newEmailCodec(),
		newTextCodec(PropMailer, versionsLegacy),
		withPref(newURICodec(PropIMPP, versions30Plus)),
		newLangCodec(),
		newTimezoneCodec(),
		newGeoCodec(),
		newTextCodec(PropTitle, allVersions),
		newTextCodec(PropRole, allVersions),
		newBinaryCodec(PropLogo),
		newAgentCodec(),
		newOrgCodec(),
		newURICodec(PropMember, versions40),
		newTextOrURICodec(PropRelated, versions40, DataTypeURI),
		newCategoriesCodec(),
		newTextCodec(PropNote, allVersions),
		newTextCodec(PropProdID, versions30Plus),
		newTimestampCodec(PropRev, allVersions),
		newTextCodec(PropSortString, versions30),
		newBinaryCodec(PropSound),
		newUIDCodec(),
		newClientPIDMapCodec(),
		withPref(newURICodec(PropURL, allVersions)),
		newTextCodec(PropClass, versions30),
		newKeyCodec(),
		newURICodec(PropFBURL, versions40),
		newURICodec(PropCalAdrURI, versions40),
		newURICodec(PropCalURI, versions40),
		newTextCodec(PropExpertise, versions40),
		newTextCodec(PropHobby, versions40),
		newTextCodec(PropInterest, versions40),
		newURICodec(PropOrgDirectory, versions40),
	)
})

func withPref[P Property](c *codec[P]) *codec[P] {
	c.prefAware = true
	return c
}

// DefaultRegistry returns the registry of all standard properties.
// The returned registry is shared and must not be modified; use [Registry.Clone] to extend it.
func DefaultRegistry() *Registry { return defRegistry() }

// Clone returns a copy of the registry that can be modified independently.
func (r *Registry) Clone() *Registry {
	r2 := &Registry{
		codecs: slices.Clone(r.codecs),
		index:  make(map[string]int, len(r.index)),
	}
	for k, v := range r.index {
		r2.index[k] = v
	}
	return r2
}

// Register adds the codec. A codec with the same name is replaced in place.
func (r *Registry) Register(c Codec) *Registry {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	name := util.UCase(c.Name())
	if i, ok := r.index[name]; ok {
		r.codecs[i] = c
		return r
	}
	r.index[name] = len(r.codecs)
	r.codecs = append(r.codecs, c)
	return r
}

// Lookup returns the codec registered for the name, ignoring case.
func (r *Registry) Lookup(name string) (Codec, bool) {
	if r == nil {
		return nil, false
	}
	i, ok := r.index[util.UCase(name)]
	if !ok {
		return nil, false
	}
	return r.codecs[i], true
}

// Codec returns the codec for the name, or the raw codec when none is registered.
func (r *Registry) Codec(name string) Codec {
	if c, ok := r.Lookup(name); ok {
		return c
	}
	return RawCodec(name)
}

// Order returns the position of the name in the registry, or -1 for unknown names.
func (r *Registry) Order(name string) int {
	if r == nil {
		return -1
	}
	if i, ok := r.index[util.UCase(name)]; ok {
		return i
	}
	return -1
}

// Codecs returns registered codecs in order.
func (r *Registry) Codecs() []Codec {
	if r == nil {
		return nil
	}
	return slices.Clone(r.codecs)
}

// CodecFor returns the codec writing the property: the registered codec when
// it can handle the property type, the raw codec for [RawProperty] values, or nil.
func (r *Registry) CodecFor(p Property) Codec {
	if raw, ok := p.(*RawProperty); ok {
		if c, ok := r.Lookup(raw.Name()); ok && canHandle(c, p) {
			return c
		}
		return RawCodec(raw.Name())
	}
	if c, ok := r.Lookup(p.Name()); ok && canHandle(c, p) {
		return c
	}
	return nil
}

// canHandle probes whether the codec accepts the property type.
func canHandle(c Codec, p Property) bool {
	if tc, ok := c.(interface{ accepts(Property) bool }); ok {
		return tc.accepts(p)
	}
	return true
}

func (c *codec[P]) accepts(p Property) bool {
	_, ok := p.(P)
	return ok
}
