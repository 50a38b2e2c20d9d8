package commenttree

import (
	"sort"
	"time"
)

// UnknownAuthor est le nom affiché quand l'auteur n'est pas résolu
const UnknownAuthor = "Unknown"

// Record est une ligne de commentaire telle que stockée en base
type Record struct {
	ID        string
	UserID    string
	PostID    string
	ParentID  *string
	Content   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// LikeAggregate regroupe les likes d'un commentaire: le total et
// l'ensemble des utilisateurs qui ont liké (pour le test d'appartenance)
type LikeAggregate struct {
	Count  int
	Likers map[string]struct{}
}

// Node est un commentaire décoré avec ses réponses, prêt à sérialiser
type Node struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	PostID     string     `json:"postId"`
	ParentID   *string    `json:"parentId"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
	UserName   string     `json:"userName"`
	LikesCount int        `json:"likesCount"`
	IsLiked    bool       `json:"isLiked"`
	Children   []*Node    `json:"children"`
}

// likesFor retourne l'agrégat de likes d'un commentaire, ou zéro s'il n'y en a pas
func likesFor(likes map[string]LikeAggregate, commentID string, viewerID string) (int, bool) {
	agg, ok := likes[commentID]
	if !ok {
		return 0, false
	}
	_, liked := agg.Likers[viewerID]
	return agg.Count, liked
}

// authorFor retourne le nom d'affichage de l'auteur, ou UnknownAuthor
func authorFor(authors map[string]string, userID string) string {
	if name, ok := authors[userID]; ok && name != "" {
		return name
	}
	return UnknownAuthor
}

// Assemble reconstruit la forêt de commentaires à partir des lignes plates.
// Deux passes: création des noeuds décorés, puis rattachement parent/enfant
// via une map id -> noeud. Un parentId qui ne pointe sur aucun commentaire
// du post (suppression concurrente) fait remonter le noeud à la racine.
// Les listes ne sont pas encore triées, voir Rank.
func Assemble(records []Record, likes map[string]LikeAggregate, authors map[string]string, viewerID string) []*Node {
	nodes := make(map[string]*Node, len(records))

	for _, record := range records {
		count, liked := likesFor(likes, record.ID, viewerID)
		nodes[record.ID] = &Node{
			ID:         record.ID,
			UserID:     record.UserID,
			PostID:     record.PostID,
			ParentID:   record.ParentID,
			Content:    record.Content,
			CreatedAt:  record.CreatedAt,
			UpdatedAt:  record.UpdatedAt,
			UserName:   authorFor(authors, record.UserID),
			LikesCount: count,
			IsLiked:    liked,
			Children:   []*Node{},
		}
	}

	roots := []*Node{}
	for _, record := range records {
		node := nodes[record.ID]
		if record.ParentID != nil {
			if parent, ok := nodes[*record.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	return roots
}

// byLikes trie une fratrie par likes décroissants, départagés par date
// de création croissante pour que l'ordre soit reproductible
func byLikes(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].LikesCount != nodes[j].LikesCount {
			return nodes[i].LikesCount > nodes[j].LikesCount
		}
		return nodes[i].CreatedAt.Before(nodes[j].CreatedAt)
	})
}

// Rank ordonne récursivement chaque niveau de la forêt, racines comprises.
// Jusqu'à 3 éléments: tri par likes décroissants. Au-delà: les 3 plus likés
// restent épinglés en tête, le reste suit par date de création croissante.
func Rank(roots []*Node) {
	rankLevel(roots)
}

func rankLevel(nodes []*Node) {
	if len(nodes) <= 3 {
		byLikes(nodes)
	} else {
		top := make([]*Node, len(nodes))
		copy(top, nodes)
		byLikes(top)
		top = top[:3]

		pinned := make(map[string]struct{}, 3)
		for _, node := range top {
			pinned[node.ID] = struct{}{}
		}

		rest := make([]*Node, 0, len(nodes)-3)
		for _, node := range nodes {
			if _, ok := pinned[node.ID]; !ok {
				rest = append(rest, node)
			}
		}
		sort.SliceStable(rest, func(i, j int) bool {
			return rest[i].CreatedAt.Before(rest[j].CreatedAt)
		})

		copy(nodes, top)
		copy(nodes[3:], rest)
	}

	for _, node := range nodes {
		rankLevel(node.Children)
	}
}

// Build assemble puis trie la forêt, c'est le point d'entrée des handlers
func Build(records []Record, likes map[string]LikeAggregate, authors map[string]string, viewerID string) []*Node {
	roots := Assemble(records, likes, authors, viewerID)
	Rank(roots)
	return roots
}

// Count retourne le nombre total de noeuds de la forêt
func Count(roots []*Node) int {
	total := 0
	for _, node := range roots {
		total += 1 + Count(node.Children)
	}
	return total
}
