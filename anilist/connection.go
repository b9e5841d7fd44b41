package anilist

import "github.com/samber/lo"

// NodeRef is an entity stub that carries only the id of the referenced entity.
type NodeRef struct {
	ID int `json:"id"`
}

// IDConnection is a node connection of bare entity stubs.
type IDConnection struct {
	Nodes []NodeRef `json:"nodes"`
}

// IDs returns the ids of the connected entities in server order.
func (c IDConnection) IDs() []int {
	return nodeIDs(c.Nodes)
}

// MediaNode is a media stub as embedded in character and staff connections.
type MediaNode struct {
	ID   int       `json:"id"`
	Type MediaType `json:"type,omitempty"`
}

// MediaNodeConnection is a node connection of media stubs.
type MediaNodeConnection struct {
	Nodes []MediaNode `json:"nodes"`
}

// IDs returns the ids of the connected media in server order.
func (c MediaNodeConnection) IDs() []int {
	return lo.Map(c.Nodes, func(n MediaNode, _ int) int { return n.ID })
}

// CharacterEdge links a media entry to one of its characters.
type CharacterEdge struct {
	Node        NodeRef       `json:"node"`
	Role        CharacterRole `json:"role,omitempty"`
	VoiceActors []NodeRef     `json:"voiceActors"`
}

// CharacterConnection is the paginated characters connection of a media entry.
type CharacterConnection struct {
	Edges []CharacterEdge `json:"edges"`
}

// IDs returns the character ids in server order.
func (c CharacterConnection) IDs() []int {
	return lo.Map(c.Edges, func(e CharacterEdge, _ int) int { return e.Node.ID })
}

// CharacterMediaEdge links a character to a media entry it appears in.
type CharacterMediaEdge struct {
	Node          NodeRef       `json:"node"`
	CharacterRole CharacterRole `json:"characterRole,omitempty"`
}

// CharacterMediaConnection is the paginated media connection of a character.
// AniList returns the same page both as nodes and as edges.
type CharacterMediaConnection struct {
	Nodes []MediaNode          `json:"nodes"`
	Edges []CharacterMediaEdge `json:"edges"`
}

// IDs returns the media ids in server order.
func (c CharacterMediaConnection) IDs() []int {
	return lo.Map(c.Nodes, func(n MediaNode, _ int) int { return n.ID })
}

// RoleIn returns the role the character plays in the media entry with the given id.
func (c CharacterMediaConnection) RoleIn(mediaID int) (CharacterRole, bool) {
	edge, ok := lo.Find(c.Edges, func(e CharacterMediaEdge) bool { return e.Node.ID == mediaID })
	return edge.CharacterRole, ok
}

// StaffCharacterNode is a character voiced or portrayed by a staff member.
type StaffCharacterNode struct {
	ID   int `json:"id"`
	Name struct {
		First string `json:"first"`
		Last  string `json:"last"`
	} `json:"name"`
	Media MediaNodeConnection `json:"media"`
}

// StaffCharacterEdge wraps a StaffCharacterNode.
type StaffCharacterEdge struct {
	Node StaffCharacterNode `json:"node"`
}

// StaffCharacterConnection is the paginated characters connection of a staff member.
type StaffCharacterConnection struct {
	Edges []StaffCharacterEdge `json:"edges"`
}

// IDs returns the character ids in server order.
func (c StaffCharacterConnection) IDs() []int {
	return lo.Map(c.Edges, func(e StaffCharacterEdge, _ int) int { return e.Node.ID })
}

// Find returns the edge for the character with the given id.
func (c StaffCharacterConnection) Find(characterID int) (StaffCharacterEdge, bool) {
	return lo.Find(c.Edges, func(e StaffCharacterEdge) bool { return e.Node.ID == characterID })
}

// MediaRelationEdge links a media entry to a related media entry.
type MediaRelationEdge struct {
	Node struct {
		ID    int       `json:"id"`
		Title Title     `json:"title"`
		Type  MediaType `json:"type"`
	} `json:"node"`
	RelationType MediaRelationType `json:"relationType"`
}

// MediaRelationConnection holds the related media of a media entry.
type MediaRelationConnection struct {
	Edges []MediaRelationEdge `json:"edges"`
}

// StaffEdge links a media entry to a staff member and the role they held.
type StaffEdge struct {
	Node NodeRef `json:"node"`
	Role string  `json:"role"`
}

// StaffConnection holds the staff of a media entry.
type StaffConnection struct {
	Edges []StaffEdge `json:"edges"`
}

// StudioEdge links a media entry to a studio.
type StudioEdge struct {
	Node   NodeRef `json:"node"`
	IsMain bool    `json:"isMain"`
}

// StudioConnection holds the studios of a media entry.
type StudioConnection struct {
	Edges []StudioEdge `json:"edges"`
}

func nodeIDs(nodes []NodeRef) []int {
	return lo.Map(nodes, func(n NodeRef, _ int) int { return n.ID })
}
