package market

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Listing{}, migration.NoModification)
	migration.MustRegister(1, &Trade{}, migration.NoModification)
	migration.MustRegister(1, &Grant{}, migration.NoModification)
}

const (
	maxTitleSize = 128
	maxTags      = 16
	maxTagSize   = 32
)

var _ orm.Model = (*Listing)(nil)

func (l *Listing) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", l.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", l.Owner.Validate())
	if l.Title == "" {
		errs = errors.AppendField(errs, "Title", errors.Wrap(errors.ErrEmpty, "title is required"))
	} else if len(l.Title) > maxTitleSize {
		errs = errors.AppendField(errs, "Title", errors.Wrapf(errors.ErrInput, "longer than %d characters", maxTitleSize))
	}
	if len(l.Tags) > maxTags {
		errs = errors.AppendField(errs, "Tags", errors.Wrapf(errors.ErrInput, "more than %d tags", maxTags))
	}
	for _, t := range l.Tags {
		if t == "" || len(t) > maxTagSize {
			errs = errors.AppendField(errs, "Tags", errors.Wrapf(errors.ErrInput, "tag %q", t))
		}
	}
	if l.DataSize <= 0 {
		errs = errors.AppendField(errs, "DataSize", errors.Wrap(errors.ErrInput, "must be positive"))
	}
	switch l.State {
	case ListingPrivate:
		if l.Price != nil {
			errs = errors.AppendField(errs, "Price", errors.Wrap(errors.ErrState, "private listing cannot have a price"))
		}
	case ListingPublic:
		if l.Price == nil {
			errs = errors.AppendField(errs, "Price", errors.Wrap(errors.ErrEmpty, "price is required"))
		} else {
			errs = errors.AppendField(errs, "Price", l.Price.Validate())
			if !l.Price.IsPositive() {
				errs = errors.AppendField(errs, "Price", errors.Wrap(errors.ErrAmount, "must be positive"))
			}
		}
	default:
		errs = errors.AppendField(errs, "State", errors.Wrapf(errors.ErrState, "invalid state %s", l.State))
	}
	if l.PendingBuyer != nil {
		errs = errors.AppendField(errs, "PendingBuyer", l.PendingBuyer.Validate())
	}
	for _, g := range l.Grantees {
		if err := g.Validate(); err != nil {
			errs = errors.AppendField(errs, "Grantees", err)
		}
	}
	return errs
}

// HasGrantee returns true if the account already holds an access credential
// for this listing.
func (l *Listing) HasGrantee(a weave.Address) bool {
	for _, g := range l.Grantees {
		if g.Equals(a) {
			return true
		}
	}
	return false
}

// NewListingBucket returns a bucket of listings keyed by the content ID.
func NewListingBucket() orm.ModelBucket {
	b := orm.NewModelBucket("listings", &Listing{},
		orm.WithIndex("owner", idxListingOwner, false),
		orm.WithIndex("published", idxListingPublished, false),
	)
	return migration.NewModelBucket("market", b)
}

func idxListingOwner(obj orm.Object) ([]byte, error) {
	lst, err := toListing(obj)
	if err != nil {
		return nil, err
	}
	return lst.Owner, nil
}

// publishedIndexKey is the only value the published index holds. Querying it
// returns all publicly listed offers without maintaining a second copy of any
// record.
var publishedIndexKey = []byte{1}

func idxListingPublished(obj orm.Object) ([]byte, error) {
	lst, err := toListing(obj)
	if err != nil {
		return nil, err
	}
	if lst.State != ListingPublic {
		// No index entry for private listings.
		return nil, nil
	}
	return publishedIndexKey, nil
}

func toListing(obj orm.Object) (*Listing, error) {
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	lst, ok := obj.Value().(*Listing)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Listing")
	}
	return lst, nil
}

var _ orm.Model = (*Trade)(nil)

func (t *Trade) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", t.Metadata.Validate())
	if len(t.ListingID) == 0 {
		errs = errors.AppendField(errs, "ListingID", errors.Wrap(errors.ErrEmpty, "listing id is required"))
	}
	errs = errors.AppendField(errs, "Buyer", t.Buyer.Validate())
	errs = errors.AppendField(errs, "Owner", t.Owner.Validate())
	if len(t.PubKey) == 0 {
		errs = errors.AppendField(errs, "PubKey", errors.Wrap(errors.ErrEmpty, "public key is required"))
	}
	if len(t.TransferID) == 0 {
		errs = errors.AppendField(errs, "TransferID", errors.Wrap(errors.ErrEmpty, "transfer id is required"))
	}
	if t.Deadline == 0 {
		errs = errors.AppendField(errs, "Deadline", errors.Wrap(errors.ErrEmpty, "deadline is required"))
	} else {
		errs = errors.AppendField(errs, "Deadline", t.Deadline.Validate())
	}
	return errs
}

// NewTradeBucket returns a bucket of pending trades. A trade is stored under
// the listing ID so there can never be two pending purchases of the same
// listing.
func NewTradeBucket() orm.ModelBucket {
	b := orm.NewModelBucket("trades", &Trade{},
		orm.WithIndex("owner", idxTradeOwner, false),
	)
	return migration.NewModelBucket("market", b)
}

func idxTradeOwner(obj orm.Object) ([]byte, error) {
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	t, ok := obj.Value().(*Trade)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Trade")
	}
	return t.Owner, nil
}

var _ orm.Model = (*Grant)(nil)

func (g *Grant) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", g.Metadata.Validate())
	if len(g.ListingID) == 0 {
		errs = errors.AppendField(errs, "ListingID", errors.Wrap(errors.ErrEmpty, "listing id is required"))
	}
	errs = errors.AppendField(errs, "Buyer", g.Buyer.Validate())
	errs = errors.AppendField(errs, "Owner", g.Owner.Validate())
	if len(g.AccessKey) == 0 {
		errs = errors.AppendField(errs, "AccessKey", errors.Wrap(errors.ErrEmpty, "access key is required"))
	}
	if g.CreatedAt == 0 {
		errs = errors.AppendField(errs, "CreatedAt", errors.Wrap(errors.ErrEmpty, "creation time is required"))
	} else {
		errs = errors.AppendField(errs, "CreatedAt", g.CreatedAt.Validate())
	}
	return errs
}

// NewGrantBucket returns a bucket of access credentials keyed by the buyer
// address followed by the listing ID. Addresses have a fixed width so the key
// is never ambiguous.
func NewGrantBucket() orm.ModelBucket {
	b := orm.NewModelBucket("grants", &Grant{},
		orm.WithIndex("buyer", idxGrantBuyer, false),
	)
	return migration.NewModelBucket("market", b)
}

func idxGrantBuyer(obj orm.Object) ([]byte, error) {
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	g, ok := obj.Value().(*Grant)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Grant")
	}
	return g.Buyer, nil
}

func grantKey(buyer weave.Address, listingID []byte) []byte {
	key := make([]byte, 0, len(buyer)+len(listingID))
	key = append(key, buyer...)
	return append(key, listingID...)
}
