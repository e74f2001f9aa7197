/*
	This hash map implementation uses a closed hashing (open addressing) technique with
	quadratic probing for resolving any hash collisions. The probe displacement for
	attempt x is the x-th triangular number, (x*x + x) / 2. Combined with a table size
	that is always a power of two, the sequence visits every slot before repeating.
	More information about this technique can be found in the links provided below:
	01) https://en.wikipedia.org/wiki/Quadratic_probing
	02) https://fgiesen.wordpress.com/2015/02/22/triangular-numbers-mod-2n/
	03) https://www.chilimath.com/lessons/basic-math-proofs/triangular-numbers/
	The basic principal is:
	-----------------------
	1) Calculate the hash value and initial index (abs(hash) mod capacity) of the key
	2) Walk the slots at index + probe(x) for x = 0, 1, 2, ...
	3) While walking, remember the first tombstone (deleted slot) passed, but keep going
	4) If the key is found and a tombstone was passed, move the entry into the tombstone
	   slot so the next search for it is shorter (lazy relocation)
	5) If an empty slot is reached the key is not present; an insert reuses the first
	   tombstone if there was one, otherwise it takes the empty slot
	6) Deleting marks the slot as a tombstone so later probe chains remain followable
	7) Once used slots (live plus tombstones) reach capacity * load factor, the table
	   grows to the next power of two and every live entry is reinserted
*/
package openaddr
